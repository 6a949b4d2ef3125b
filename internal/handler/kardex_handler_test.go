package handler

import (
	"errors"
	"fmt"
	"testing"

	"inventory-service/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestMovementError_BusinessRejectionsPassThrough(t *testing.T) {
	assert.Equal(t, service.ErrInsufficientStock.Error(), movementError(service.ErrInsufficientStock))
	assert.Equal(t, service.ErrInvalidQuantity.Error(), movementError(service.ErrInvalidQuantity))
	assert.Equal(t, service.ErrProductNotFound.Error(), movementError(service.ErrProductNotFound))
}

func TestMovementError_PersistenceFailuresAreNotEchoed(t *testing.T) {
	driverErr := errors.New("pq: connection reset by peer")
	wrapped := fmt.Errorf("load product 42: %w", driverErr)

	assert.Equal(t, "internal server error", movementError(wrapped))
}
