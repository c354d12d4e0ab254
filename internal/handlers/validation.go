package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations teaches the binding validator about types it does
// not know natively. Must be called once before routes are served.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// decimal.Decimal validates through its float64 value so numeric tags
		// like gt=0 apply.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	}
}

// validationErrorBody builds the 400 payload for schema failures: the Arabic
// display message plus per-field details and a joined message string.
func validationErrorBody(displayMsg string, err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": displayMsg, "message": err.Error()}
	}

	details := make([]gin.H, 0, len(verrs))
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fieldErrorMessage(fe)
		details = append(details, gin.H{"path": fe.Field(), "message": msg})
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), msg))
	}
	return gin.H{
		"error":   displayMsg,
		"details": details,
		"message": strings.Join(parts, ", "),
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed validation on " + fe.Tag()
	}
}
