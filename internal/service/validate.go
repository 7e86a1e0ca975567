package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func validateStatus(status TransactionStatus) error {
	if err := validate.Var(string(status), "required,oneof=pending completed failed"); err != nil {
		return fmt.Errorf("%w: status: %w", ErrValidation, err)
	}
	return nil
}
