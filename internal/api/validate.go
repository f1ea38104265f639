package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	apperrors "research-agent/client/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Request payloads are validated before they leave the client, so obvious
// mistakes fail fast without a network round-trip. The validator instance is
// a singleton because constructing one is comparatively expensive.

var (
	validate *validator.Validate
	once     sync.Once
)

func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a payload struct against the rules in its field
// tags and returns a wrapped apperrors.ErrValidation with a readable message
// on failure.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", apperrors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(errorMessages, "; "))
}
