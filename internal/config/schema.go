package config

// CatalogConfig lists the problems a deployment serves and their input limits
type CatalogConfig struct {
	Problems []ProblemConfig `yaml:"problems"`
}

// ProblemConfig enables one problem and sets its defaults
type ProblemConfig struct {
	Name           string `yaml:"name"`
	Enabled        bool   `yaml:"enabled"`
	Description    string `yaml:"description"`
	MaxInputLength int    `yaml:"max_input_length"`
	Tokenize       string `yaml:"tokenize"`
	Normalize      bool   `yaml:"normalize"`
}
