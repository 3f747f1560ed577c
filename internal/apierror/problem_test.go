package apierror

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemDetailsError(t *testing.T) {
	p := &ProblemDetails{Title: "Bad Request", Detail: "field x is wrong"}
	assert.Equal(t, "field x is wrong", p.Error())

	p = &ProblemDetails{Title: "Bad Request"}
	assert.Equal(t, "Bad Request", p.Error())
}

func TestNewValidationError(t *testing.T) {
	fields := []FieldError{
		{Field: "stress_level", Message: "failed on the 'max' rule", Code: "max"},
	}
	p := NewValidationError("req-1", fields)

	assert.Equal(t, TypeValidation, p.Type)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "req-1", p.RequestID)
	assert.Equal(t, fields, p.Errors)
}

func TestNewNotFoundError(t *testing.T) {
	p := NewNotFoundError("req-1", "episode", "abc-123")

	assert.Equal(t, TypeNotFound, p.Type)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Contains(t, p.Detail, "episode")
	assert.Contains(t, p.Detail, "abc-123")
}

func TestNewInvalidWindowError(t *testing.T) {
	p := NewInvalidWindowError("req-1", "period_end precedes period_start")

	assert.Equal(t, TypeInvalidWindow, p.Type)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "period_end precedes period_start", p.Detail)
}

func TestNewRateLimitError(t *testing.T) {
	p := NewRateLimitError("req-1", 60)

	assert.Equal(t, http.StatusTooManyRequests, p.Status)
	require.NotNil(t, p.RetryAfter)
	assert.Equal(t, 60, *p.RetryAfter)
}

func TestProblemDetailsJSONOmitsEmptyFields(t *testing.T) {
	p := NewInternalError("req-1")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.NotContains(t, decoded, "retry_after")
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "instance")
	assert.Equal(t, "urn:aurora:error:internal", decoded["type"])
}
