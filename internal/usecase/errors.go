package usecase

import (
	"errors"
	"fmt"

	"sea-haven/internal/data/entity"
	"sea-haven/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError carries per-field messages and unwraps to ErrInvalidInput.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func validate(req interface{}) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func parseID(kind, hex string) (primitive.ObjectID, error) {
	id, err := entity.ParseObjectID(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s id %q", ErrInvalidInput, kind, hex)
	}
	return id, nil
}
