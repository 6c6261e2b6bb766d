package profile

import (
	"fmt"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
)

// Node names used by the profile section
const (
	NodeSection = "profile"
	NodeImage   = "profile-image"
	NodeName    = "profile-name"
	NodeTitle   = "profile-title"
)

// Build returns the profile section: the picture with the name and title
// stacked below it, centered in whatever space the parent gives it.
// The only failure is an image key the provider does not know.
func Build(p resources.Provider, data Data, cfg settings.CardConfig) (layout.Node, error) {
	img, err := p.ResolveImage(data.ImageKey)
	if err != nil {
		return layout.Node{}, fmt.Errorf("profile image: %w", err)
	}

	title := titleStyle
	title.Color = cfg.Accent

	return layout.Node{
		Kind:     layout.KindColumn,
		Name:     NodeSection,
		Modifier: sectionModifier(cfg),
		Arrange:  layout.ArrangeCenter,
		Align:    layout.AlignCenter,
		Children: []layout.Node{
			{
				Kind:              layout.KindImage,
				Name:              NodeImage,
				Image:             img,
				AccessibilityName: data.ImageDescription,
				Modifier: layout.Modifier{
					Width:  imageSize,
					Height: imageSize,
					Border: layout.Border{Width: imageBorderWidth, Color: layout.White},
					Radius: imageCornerRadius,
				},
			},
			{
				Kind:     layout.KindText,
				Name:     NodeName,
				Text:     data.Name,
				Style:    nameStyle,
				Modifier: layout.Modifier{Margin: layout.Insets{Top: nameGap}},
			},
			{
				Kind:     layout.KindText,
				Name:     NodeTitle,
				Text:     data.Title,
				Style:    title,
				Modifier: layout.Modifier{Margin: layout.Insets{Top: titleGap}},
			},
		},
	}, nil
}

func sectionModifier(cfg settings.CardConfig) layout.Modifier {
	if cfg.ProfileVariant == settings.VariantPlain {
		return layout.Modifier{
			Padding:    layout.Uniform(sectionInset),
			FillWidth:  true,
			FillHeight: true,
		}
	}
	return layout.Modifier{
		Margin:     layout.Uniform(sectionInset),
		Background: cfg.CardBackground,
		Border:     layout.Border{Width: cfg.BorderWidth, Color: cfg.BorderColor},
		Radius:     cfg.CornerRadius,
		FillWidth:  true,
		FillHeight: true,
	}
}
