package models

import (
	"errors"
	"fmt"
)

// Entity kind labels as the platform reports them. These strings are part of
// the wire contract and stay in Portuguese.
const (
	EntityCliente     = "Cliente"
	EntityRestaurante = "Restaurante"
	EntityProduto     = "Produto"
	EntityPedido      = "Pedido"
)

// NotFoundError signals that a referenced entity does not exist. It is a
// client error and is never retried.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com ID %d não encontrado", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity kind and id.
func NewNotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError signals a structurally invalid request. It is raised before
// any lookup or persistence happens.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
