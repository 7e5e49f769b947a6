package verifier

import (
	"strings"

	"github.com/edithqa/edith/internal/executor"
)

// Threshold is the minimum number of matched goal keywords for a run to
// count as successful. It is a fixed bar independent of goal length.
const Threshold = 3

// Keyword scores executed outcomes against the original goal by naive
// keyword overlap. It performs no semantic validation.
type Keyword struct{}

func New() *Keyword {
	return &Keyword{}
}

// Verify tokenizes the goal on whitespace, lowercases each token, and
// collects the tokens that occur as a substring of at least one outcome's
// rendered text. Tokens are kept in goal order and are not de-duplicated.
// The run passes when Threshold or more tokens matched.
func (k *Keyword) Verify(goal string, outcomes []executor.Outcome) ([]string, bool) {
	haystacks := make([]string, len(outcomes))
	for i, o := range outcomes {
		haystacks[i] = strings.ToLower(o.String())
	}

	keywords := strings.Fields(strings.ToLower(goal))
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		for _, h := range haystacks {
			if strings.Contains(h, kw) {
				matched = append(matched, kw)
				break
			}
		}
	}

	return matched, len(matched) >= Threshold
}
