package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
	"github.com/povarna/algo-drills/internal/problems"
	"github.com/povarna/algo-drills/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	problem := flag.String("problem", "", "Problem name. Runs the example checks when empty")
	text := flag.String("text", "", "Text input (longest-substring, valid-palindrome, unique-marker)")
	words := flag.String("words", "", "Comma separated words (longest-common-prefix)")
	heights := flag.String("heights", "", "Comma separated line heights (container-with-most-water)")
	windowSize := flag.Int("window", 0, "Marker length (unique-marker), 4 when unset")
	tokenize := flag.String("tokenize", "", "Token unit for longest-substring and unique-marker: rune or byte")
	normalize := flag.Bool("normalize", false, "Apply Unicode NFC normalization before solving")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	_ = godotenv.Load()
	log.Logger = logger.NewConsole(os.Getenv("LOG_LEVEL"))
	lg := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec, err := newExecutor(&lg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build problem catalog")
	}

	if *problem == "" {
		if failed := runExamples(ctx, os.Stdout, exec); failed > 0 {
			os.Exit(1)
		}
		return
	}

	// An absent -text differs from -text ""
	var textArg *string
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			textArg = text
		}
	})

	input, err := buildInput(textArg, *words, *heights, *tokenize, *normalize)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid flags")
	}
	if *windowSize != 0 {
		input.WindowSize = windowSize
	}

	result, err := exec.Execute(ctx, models.SolveRequest{
		Problem: models.Problem(*problem),
		Input:   input,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Solve failed")
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}

// newExecutor uses the YAML catalog when present and every problem otherwise.
func newExecutor(logger *zerolog.Logger) (*executor.Executor, error) {
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		logger.Debug().Err(err).Msg("Problem config not loaded, enabling every problem")
		cfg = config.Default()
	}

	catalog, err := problems.NewCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}
	return executor.NewExecutor(catalog, nil, logger), nil
}

func buildInput(text *string, words, heights, tokenize string, normalize bool) (models.Input, error) {
	input := models.Input{
		Text:     text,
		Tokenize: models.Tokenize(tokenize),
	}

	if words != "" {
		input.Words = strings.Split(words, ",")
	}
	if heights != "" {
		for _, field := range strings.Split(heights, ",") {
			h, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return input, fmt.Errorf("invalid height %q: %w", field, err)
			}
			input.Heights = append(input.Heights, h)
		}
	}
	if normalize {
		input.Normalize = models.Bool(true)
	}

	return input, nil
}
