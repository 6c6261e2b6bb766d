package profile

import "card-frame/pkg/layout"

// Data is the person shown in the profile section
type Data struct {
	ImageKey         string
	ImageDescription string
	Name             string
	Title            string
}

const (
	imageSize         = 250.0
	imageBorderWidth  = 2.0
	imageCornerRadius = 16.0
	sectionInset      = 32.0
	nameGap           = 16.0
	titleGap          = 8.0
)

var (
	nameStyle = layout.TextStyle{
		Color:  layout.White,
		SizePt: 36,
		Weight: layout.WeightNormal,
		Family: layout.FamilySerif,
	}
	titleStyle = layout.TextStyle{
		SizePt: 24,
		Weight: layout.WeightSemiBold,
		Family: layout.FamilySerif,
	}
)
