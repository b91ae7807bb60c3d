package utils

import (
	"time"

	"zetanom/domain"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the application's custom tags registered:
// serving_unit ("g" or "ml") and time_zone.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("serving_unit", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseServingUnit(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("time_zone", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" || name == "Local" {
			return true
		}
		_, err := time.LoadLocation(name)
		return err == nil
	})
	return v
}
