package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/zutopia/constants"
)

// Status is the two-line label shown between games
type Status struct {
	Headline string // outcome of the previous game, empty before the first
	Prompt   string
}

// Text joins the non-empty lines
func (s Status) Text() string {
	lines := make([]string, 0, 2)
	for _, l := range []string{s.Headline, s.Prompt} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

// outcomeStatus builds the label shown after a game ends with outcome
func outcomeStatus(outcome GameState, misses, remaining int) Status {
	s := Status{Prompt: constants.StatusPrompt}
	switch outcome {
	case StateLost:
		s.Headline = fmt.Sprintf(constants.StatusLostFormat, misses)
	case StateWon:
		s.Headline = fmt.Sprintf(constants.StatusWonFormat, remaining)
	}
	return s
}
