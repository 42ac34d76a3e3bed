package controllers

import (
	"slices"

	"github.com/go-playground/validator/v10"

	"habittracker/backend/models"
	"habittracker/backend/progress"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		_, err := progress.ParseDay(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Colors, fl.Field().String())
	})
}
