package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	Name string `validate:"notblank"`
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, Struct(named{Name: "Rahul"}))
	assert.NoError(t, Struct(named{Name: "  Rahul  "}))

	for _, blank := range []string{"", " ", "\t\n"} {
		var verrs validator.ValidationErrors
		require.ErrorAs(t, Struct(named{Name: blank}), &verrs, "name %q", blank)
		assert.Equal(t, TagNotBlank, verrs[0].Tag())
	}
}

func TestNew_IndependentInstances(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(named{Name: "Priya"}))
	assert.Error(t, v.Struct(named{}))
}
