package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/exercises-api/internal/types"
	"github.com/aanand-mishra/exercises-api/internal/validation"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteJSON(w, http.StatusCreated, map[string]int{"id": 1}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestGeneralError(t *testing.T) {
	body, err := json.Marshal(GeneralError(errors.New("boom")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error":"boom"}`, string(body))

	body, err = json.Marshal(OK())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestValidationError(t *testing.T) {
	err := validation.Struct(types.PNRRecord{PNR: "12AB"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	resp := ValidationError(verrs)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field PNR must be 10 characters long, field Train is required, field Passengers is required",
		resp.Error)
}

func TestValidationError_Marks(t *testing.T) {
	student := types.Student{Name: " "}
	student.Marks.Set("maths", 120)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, validation.Struct(student), &verrs)

	assert.Equal(t,
		"field Name must not be blank, field Student.Marks[0].Score must be at most 100, got 120",
		ValidationError(verrs).Error)
}
