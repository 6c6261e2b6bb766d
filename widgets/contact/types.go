package contact

import (
	"card-frame/pkg/layout"

	"github.com/go-playground/validator/v10"
)

// Entry is one line of contact information
type Entry struct {
	Icon              layout.Icon
	Label             string `validate:"required"`
	AccessibilityName string
}

var validate = validator.New()

// Validate checks that the entry has a label
func (e Entry) Validate() error {
	return validate.Struct(e)
}

const (
	sectionInset = 32.0
	rowInset     = 28.0
	rowSpacing   = 16.0
	itemGap      = 8.0
)

var labelStyle = layout.TextStyle{
	Color:  layout.White,
	SizePt: 16,
	Weight: layout.WeightSemiBold,
	Family: layout.FamilySansSerif,
}
