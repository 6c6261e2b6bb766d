package layout

import "unicode/utf8"

// Measurer reports the size of a run of text drawn in a style
type Measurer interface {
	MeasureText(text string, style TextStyle) (w, h float64)
}

// Estimate approximates text metrics from the font size alone. It is used
// when no real font is loaded (exports, tests).
type Estimate struct{}

// MeasureText implements Measurer
func (Estimate) MeasureText(text string, style TextStyle) (float64, float64) {
	advance := 0.55
	if style.Weight == WeightSemiBold {
		advance = 0.58
	}
	return float64(utf8.RuneCountInString(text)) * style.SizePt * advance, style.SizePt * 1.2
}

// measure returns the outer (margin box) size n wants inside maxW x maxH
func measure(n Node, maxW, maxH float64, m Measurer) (float64, float64) {
	maxW, maxH = max(0, maxW), max(0, maxH)
	mod := n.Modifier
	chromeW := 2*mod.Border.Width + mod.Padding.Horizontal()
	chromeH := 2*mod.Border.Width + mod.Padding.Vertical()
	innerW := max(0, maxW-mod.Margin.Horizontal()-chromeW)
	innerH := max(0, maxH-mod.Margin.Vertical()-chromeH)

	var cw, ch float64
	switch n.Kind {
	case KindText:
		cw, ch = m.MeasureText(n.Text, n.Style)
	case KindIcon:
		cw, ch = IconSize, IconSize
	case KindColumn:
		remaining := innerH
		for i, c := range n.Children {
			if i > 0 {
				ch += n.Spacing
				remaining = max(0, remaining-n.Spacing)
			}
			w, h := measure(c, innerW, remaining, m)
			cw = max(cw, w)
			ch += h
			remaining = max(0, remaining-h)
		}
	case KindRow:
		remaining := innerW
		for i, c := range n.Children {
			if i > 0 {
				cw += n.Spacing
				remaining = max(0, remaining-n.Spacing)
			}
			w, h := measure(c, remaining, innerH, m)
			cw += w
			ch = max(ch, h)
			remaining = max(0, remaining-w)
		}
	}

	w, h := cw+chromeW, ch+chromeH
	if mod.Width > 0 {
		w = mod.Width
	}
	if mod.Height > 0 {
		h = mod.Height
	}
	w += mod.Margin.Horizontal()
	h += mod.Margin.Vertical()
	if mod.FillWidth {
		w = maxW
	}
	if mod.FillHeight {
		h = maxH
	}
	return min(w, maxW), min(h, maxH)
}
