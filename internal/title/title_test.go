package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"all caps with extra spaces", "  DILWALE   DULHANIA   LE   JAYENGE  ", "Dilwale Dulhania Le Jayenge"},
		{"minor word not first", "dil ka kya kare", "Dil ka Kya Kare"},
		{"minor word first", "ka kya kare", "Ka Kya Kare"},
		{"mixed case minor word", "KABHI KHUSHI KABHIE GHAM AUR", "Kabhi Khushi Kabhie Gham aur"},
		{"english minor words", "the lord OF the rings", "The Lord of the Rings"},
		{"single letter article", "a wednesday", "A Wednesday"},
		{"article mid title", "ek THA tiger A an", "Ek Tha Tiger a an"},
		{"se is not minor by default", "dil se", "Dil Se"},
		{"tabs and newlines collapse", "\tsholay\n\n  returns ", "Sholay Returns"},
		{"single word", "lagaan", "Lagaan"},
		{"non ascii", "ÉCOLE de paris", "École De Paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fix(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFix_Empty(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\t\n", " \r\n\t "} {
		got, err := Fix(input)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", input)
		assert.Empty(t, got)
	}
}

func TestNew_CustomMinorWords(t *testing.T) {
	n := New(append([]string{"SE"}, DefaultMinorWords...)...)

	got, err := n.Fix("DIL SE")
	require.NoError(t, err)
	assert.Equal(t, "Dil se", got)

	got, err = n.Fix("se dil tak")
	require.NoError(t, err)
	assert.Equal(t, "Se Dil Tak", got)

	assert.True(t, n.IsMinor("Se"))
	assert.False(t, New().IsMinor("se"))
}

func TestNew_BlankWordsIgnored(t *testing.T) {
	n := New(" ", "", "ka")

	got, err := n.Fix("dil ka kya kare")
	require.NoError(t, err)
	assert.Equal(t, "Dil ka Kya Kare", got)
	assert.False(t, n.IsMinor("the"))
}
