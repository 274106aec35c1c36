package title

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFixProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1995)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: whitespace-only input is always rejected
	properties.Property("whitespace-only titles are empty", prop.ForAll(
		func(n int) bool {
			var sb strings.Builder
			for i := 0; i < n; i++ {
				sb.WriteByte(" \t\n\r"[i%4])
			}
			got, err := Fix(sb.String())
			return got == "" && err == ErrEmpty
		},
		gen.IntRange(0, 40),
	))

	// Property: output has single separators and fixing twice changes nothing
	properties.Property("fix is idempotent and collapses spaces", prop.ForAll(
		func(words []string, gap int) bool {
			input := strings.Join(words, strings.Repeat(" ", gap))
			once, err := Fix(input)
			if err != nil {
				return strings.TrimSpace(input) == ""
			}
			twice, err := Fix(once)
			if err != nil || once != twice {
				return false
			}
			return !strings.Contains(once, "  ") && once == strings.TrimSpace(once)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t)
}
