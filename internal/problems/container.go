package problems

import (
	"fmt"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	containerwithmostwater "github.com/povarna/algo-drills/leetcode/0011_container_with_most_water"
)

type ContainerSolver struct {
	cfg config.ProblemConfig
}

func (s *ContainerSolver) Problem() models.Problem {
	return models.ProblemContainerWithMostWater
}

func (s *ContainerSolver) Description() string {
	return s.cfg.Description
}

func (s *ContainerSolver) Solve(input models.Input) (Answer, error) {
	if input.Heights == nil {
		return Answer{}, missing(s.Problem(), "heights")
	}
	if err := checkLength(s.Problem(), len(input.Heights), s.cfg.MaxInputLength); err != nil {
		return Answer{}, err
	}

	for i, h := range input.Heights {
		if h < 0 {
			return Answer{}, fmt.Errorf("%w: height %d at index %d is negative", ErrInvalidArgument, h, i)
		}
	}

	return Answer{Value: containerwithmostwater.MaxArea(input.Heights)}, nil
}
