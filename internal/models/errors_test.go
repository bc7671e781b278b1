package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFound(EntityProduto, 999)
	assert.Equal(t, "Produto com ID 999 não encontrado", err.Error())

	err = NewNotFound(EntityCliente, 1)
	assert.Equal(t, "Cliente com ID 1 não encontrado", err.Error())
}

func TestIsNotFound(t *testing.T) {
	err := NewNotFound(EntityRestaurante, 5)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("resolving restaurant: %w", err)))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestIsValidation(t *testing.T) {
	err := ValidationError{Field: "items", Message: "order must contain at least one item"}
	assert.Equal(t, "items: order must contain at least one item", err.Error())
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("rejected: %w", err)))
	assert.False(t, IsValidation(NewNotFound(EntityPedido, 1)))
}
