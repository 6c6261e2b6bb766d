package export

import (
	"fmt"
	"strings"

	"card-frame/pkg/layout"

	"github.com/charmbracelet/lipgloss"
)

// cellPoints is how many points one terminal cell stands for
const cellPoints = 14.0

func cells(pt float64) int {
	return int(pt/cellPoints + 0.5)
}

// Preview draws the node tree as styled terminal text, width cells wide.
// Geometry is structural only: borders, order and alignment survive,
// exact sizes and backgrounds do not.
func Preview(n layout.Node, width int) string {
	return preview(n, width)
}

func preview(n layout.Node, width int) string {
	mod := n.Modifier
	style := lipgloss.NewStyle().
		MarginLeft(cells(mod.Margin.Left)).
		MarginRight(cells(mod.Margin.Right)).
		PaddingLeft(cells(mod.Padding.Left)).
		PaddingRight(cells(mod.Padding.Right))
	if mod.Margin.Top >= cellPoints {
		style = style.MarginTop(1)
	}

	// Width() covers the padding but not the border or margin
	boxWidth := width - cells(mod.Margin.Horizontal())
	if mod.Border.Width > 0 {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(termColor(mod.Border.Color))
		boxWidth -= 2
	}
	boxWidth = max(boxWidth, 1)
	inner := max(boxWidth-cells(mod.Padding.Horizontal()), 1)

	var body string
	switch n.Kind {
	case layout.KindText:
		body = termText(n.Style).Render(n.Text)
	case layout.KindIcon:
		body = lipgloss.NewStyle().Foreground(termColor(n.Tint)).Render(n.Icon.Glyph())
	case layout.KindImage:
		label := n.AccessibilityName
		if label == "" {
			label = n.Image.Key
		}
		body = fmt.Sprintf("[ %s ]", label)
	case layout.KindColumn:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, preview(c, inner))
		}
		body = lipgloss.JoinVertical(termAlign(n.Align), parts...)
	case layout.KindRow:
		gap := strings.Repeat(" ", max(1, cells(n.Spacing)))
		parts := make([]string, 0, 2*len(n.Children))
		remaining := inner
		for i, c := range n.Children {
			if i > 0 {
				parts = append(parts, gap)
				remaining -= len(gap)
			}
			part := preview(c, remaining)
			remaining -= lipgloss.Width(part)
			parts = append(parts, part)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	if mod.FillWidth {
		style = style.Width(boxWidth)
		if n.Kind == layout.KindColumn {
			style = style.Align(termAlign(n.Align))
		}
	}
	return style.Render(body)
}

func termText(s layout.TextStyle) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(termColor(s.Color)).
		Bold(s.Weight == layout.WeightSemiBold)
}

func termColor(c layout.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func termAlign(a layout.Align) lipgloss.Position {
	switch a {
	case layout.AlignCenter:
		return lipgloss.Center
	case layout.AlignEnd:
		return lipgloss.Right
	}
	return lipgloss.Left
}
