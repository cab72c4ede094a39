package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%v: %w", err, constants.ErrBadRequest)
	}
	return nil
}

// Binder binds query parameters and immediately validates the bound struct,
// so controllers only ever see requests inside the documented ranges.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, ctx echo.Context) error {
	if err := b.base.Bind(i, ctx); err != nil {
		return fmt.Errorf("bind request: %v: %w", err, constants.ErrBadRequest)
	}
	return ctx.Validate(i)
}
