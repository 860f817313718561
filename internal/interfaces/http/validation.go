package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"helperdesk/internal/shared/authorization"
)

// registerValidations teaches gin's binding layer the domain rank
// vocabulary, so malformed ranks are rejected at the request edge.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rank", func(fl validator.FieldLevel) bool {
			return authorization.Rank(fl.Field().String()).IsValid()
		})
	}
}
