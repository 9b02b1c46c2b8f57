package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Register custom validation for inventory locations. Layar lama
	// mengirim variasi kapital ("Gudang", "TikTok"), jadi pencocokan
	// tidak case-sensitive.
	validate.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "toko", "gudang", "tiktok", "rusak":
			return true
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
