package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mfreitas/bancario/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json field names instead of Go struct fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return domain.ValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return domain.ValidCNPJ(fl.Field().String())
	})

	return v
}

// checkRequest validates a decoded request payload and folds every
// field failure into a single Validation error, one "field - message; "
// segment per offending field.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Validationf("invalid request body")
	}

	var sb strings.Builder
	for _, fe := range fieldErrs {
		sb.WriteString(fe.Field())
		sb.WriteString(" - ")
		sb.WriteString(messageFor(fe))
		sb.WriteString("; ")
	}
	return domain.Validationf("%s", sb.String())
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "cpf":
		return "invalid CPF"
	case "cnpj":
		return "invalid CNPJ"
	default:
		return "is invalid"
	}
}
