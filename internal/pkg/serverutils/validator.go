package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and flattens failures into
// one readable error.
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if ok := isValidationErrors(err, &errs); !ok {
			return err
		}
		messages := make([]string, len(errs))
		for i, fe := range errs {
			messages[i] = fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag())
		}
		return fiber.NewError(fiber.StatusBadRequest, "validation failed: "+strings.Join(messages, "; "))
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	if ve, ok := err.(validator.ValidationErrors); ok {
		*target = ve
		return true
	}
	return false
}
