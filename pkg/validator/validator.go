// Package validator wires go-playground/validator into echo so the review API
// request shapes (dto/review) are checked from their struct tags at bind time.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates the validator registered on the echo instance in main
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate checks a bound request struct against its validate tags, e.g. the
// required url on AnalyzeRequest.VideoURL
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
