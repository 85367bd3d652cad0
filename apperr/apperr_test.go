package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not_found", NotFound("proposal", "abc"), http.StatusNotFound},
		{"invalid_reference", InvalidReference("service", "x1"), http.StatusBadRequest},
		{"input", Input("bad json"), http.StatusBadRequest},
		{"internal", Internal("save failed", errors.New("disk full")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("service", "s1")), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidReference("service", "s9"))
	assert.True(t, IsType(err, TypeInvalidReference))
	assert.False(t, IsType(err, TypeNotFound))
	assert.False(t, IsType(errors.New("plain"), TypeInternal))
}

func TestMessageHidesInternalCause(t *testing.T) {
	err := Internal("could not save proposal", errors.New("sqlite: locked"))
	assert.Equal(t, "could not save proposal", Message(err))
	assert.Contains(t, err.Error(), "sqlite: locked")
	assert.Equal(t, "Something went wrong. Please try again.", Message(errors.New("x")))
	assert.Equal(t, "INTERNAL_ERROR", Code(errors.New("x")))
	assert.Equal(t, "service s9 not found", Message(InvalidReference("service", "s9")))
}
