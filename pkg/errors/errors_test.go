package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("rpc error")
	err := fmt.Errorf("loading item: %w", NotFound("Item", cause))

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestStatusOfPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("x")))
}

func TestConstructorsStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no", nil).Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("no", nil).Status)
	assert.Equal(t, http.StatusConflict, Conflict("dup").Status)
	assert.Equal(t, http.StatusGone, Gone("old").Status)
	assert.Equal(t, "Cart not found", NotFoundMessage("Cart not found").Message)
}
