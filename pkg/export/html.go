// Package export turns a rendered card into formats that do not need a display:
// a standalone HTML page and a terminal preview.
package export

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const pageCSS = `html,body{margin:0;padding:0}
.card-frame{position:relative;overflow:hidden}
.card-frame>*{position:absolute;box-sizing:border-box;margin:0}
.text,.icon{white-space:nowrap;line-height:1.2}
.icon{display:flex;align-items:center;justify-content:center}`

// Page returns a complete HTML document that reproduces the solved frame.
// Every node becomes an absolutely positioned element, painted parents first,
// so the page matches the device pixel for pixel at scale 1.
func Page(f layout.Frame, title string) g.Node {
	var items []g.Node
	f.Walk(func(fr layout.Frame) {
		items = append(items, frameNode(fr))
	})

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				TitleEl(g.Text(title)),
				StyleEl(g.Raw(pageCSS)),
			),
			Body(
				Div(
					Class("card-frame"),
					Style(fmt.Sprintf("width:%s;height:%s", px(f.Rect.W), px(f.Rect.H))),
					g.Group(items),
				),
			),
		),
	)
}

// WriteHTML renders Page to w
func WriteHTML(w io.Writer, f layout.Frame, title string) error {
	return Page(f, title).Render(w)
}

func frameNode(f layout.Frame) g.Node {
	n := f.Node
	style := boxStyle(f)

	switch n.Kind {
	case layout.KindText:
		return Div(Class("text"), Data("name", n.Name), Style(style+textStyle(n.Style)), g.Text(n.Text))
	case layout.KindIcon:
		return Div(
			Class("icon"),
			Data("name", n.Name),
			Role("img"),
			Aria("label", n.AccessibilityName),
			Style(fmt.Sprintf("%scolor:%s;font-size:%s;", style, cssColor(n.Tint), px(layout.IconSize))),
			g.Text(n.Icon.Glyph()),
		)
	case layout.KindImage:
		return Img(Class("image"), Data("name", n.Name), Style(style), Src(dataURI(n.Image)), Alt(n.AccessibilityName))
	}
	return Div(Class(n.Kind.String()), Data("name", n.Name), Style(style))
}

func boxStyle(f layout.Frame) string {
	mod := f.Node.Modifier
	var b strings.Builder
	fmt.Fprintf(&b, "left:%s;top:%s;width:%s;height:%s;", px(f.Box.X), px(f.Box.Y), px(f.Box.W), px(f.Box.H))
	if !mod.Background.IsZero() {
		fmt.Fprintf(&b, "background:%s;", cssColor(mod.Background))
	}
	if mod.Border.Width > 0 {
		fmt.Fprintf(&b, "border:%s solid %s;", px(mod.Border.Width), cssColor(mod.Border.Color))
	}
	if mod.Radius > 0 {
		fmt.Fprintf(&b, "border-radius:%s;", px(mod.Radius))
	}
	p := mod.Padding
	if p != (layout.Insets{}) {
		fmt.Fprintf(&b, "padding:%s %s %s %s;", px(p.Top), px(p.Right), px(p.Bottom), px(p.Left))
	}
	return b.String()
}

func textStyle(s layout.TextStyle) string {
	family := "sans-serif"
	if s.Family == layout.FamilySerif {
		family = "serif"
	}
	weight := 400
	if s.Weight == layout.WeightSemiBold {
		weight = 600
	}
	return fmt.Sprintf("color:%s;font-family:%s;font-weight:%d;font-size:%s;", cssColor(s.Color), family, weight, px(s.SizePt))
}

func cssColor(c layout.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func dataURI(img resources.Image) string {
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
