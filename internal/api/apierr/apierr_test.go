package apierr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation.Status())
	assert.Equal(t, http.StatusBadRequest, NotFound.Status())
	assert.Equal(t, http.StatusBadRequest, Conflict.Status())
	assert.Equal(t, http.StatusInternalServerError, Internal.Status())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "'id' já existe", New(Conflict, "'id' já existe").Error())

	cause := errors.New("connection refused")
	wrapped := Wrap(cause)
	assert.Equal(t, "connection refused", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	assert.Equal(t, "Erro inesperado", (&Error{Kind: Internal}).Error())
}
