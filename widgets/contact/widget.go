package contact

import (
	"card-frame/pkg/layout"
	"card-frame/pkg/settings"
)

// Node names used by the contact section
const (
	NodeSection = "contact"
	NodeRow     = "contact-row"
	NodeIcon    = "contact-icon"
	NodeLabel   = "contact-label"
)

// Row returns a full-width row with the tinted icon followed by the label,
// which takes the rest of the width
func Row(e Entry, cfg settings.CardConfig) layout.Node {
	return layout.Node{
		Kind:    layout.KindRow,
		Name:    NodeRow,
		Spacing: rowSpacing,
		Align:   layout.AlignCenter,
		Modifier: layout.Modifier{
			Padding:   layout.Insets{Left: rowInset},
			FillWidth: true,
		},
		Children: []layout.Node{
			{
				Kind:              layout.KindIcon,
				Name:              NodeIcon,
				Icon:              e.Icon,
				Tint:              cfg.Accent,
				AccessibilityName: e.AccessibilityName,
				Modifier:          layout.Modifier{Margin: layout.Insets{Top: itemGap}},
			},
			{
				Kind:  layout.KindText,
				Name:  NodeLabel,
				Text:  e.Label,
				Style: labelStyle,
				Modifier: layout.Modifier{
					Margin: layout.Insets{Top: itemGap},
					Flex:   true,
					Weight: 1,
				},
			},
		},
	}
}

// Section stacks one row per entry, in the order given, inside a filled and
// bordered card. No entries still gives the styled, empty card.
func Section(entries []Entry, cfg settings.CardConfig) layout.Node {
	rows := make([]layout.Node, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row(e, cfg))
	}

	return layout.Node{
		Kind:    layout.KindColumn,
		Name:    NodeSection,
		Arrange: layout.ArrangeCenter,
		Align:   layout.AlignCenter,
		Modifier: layout.Modifier{
			Margin:     layout.Uniform(sectionInset),
			Background: cfg.CardBackground,
			Border:     layout.Border{Width: cfg.BorderWidth, Color: cfg.BorderColor},
			Radius:     cfg.CornerRadius,
			FillWidth:  true,
			FillHeight: true,
		},
		Children: rows,
	}
}
