package layout

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the style invariants (a positive size)
func (s TextStyle) Validate() error {
	return validate.Struct(s)
}
