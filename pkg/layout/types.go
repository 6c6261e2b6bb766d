package layout

import "card-frame/pkg/resources"

// Kind identifies what a node draws or how it arranges its children
type Kind int

const (
	KindColumn Kind = iota
	KindRow
	KindText
	KindIcon
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindRow:
		return "row"
	case KindText:
		return "text"
	case KindIcon:
		return "icon"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Weight is a font weight
type Weight int

const (
	WeightNormal Weight = iota
	WeightSemiBold
)

// Family is a generic font family
type Family int

const (
	FamilySansSerif Family = iota
	FamilySerif
)

// Icon is one of the glyphs a contact row can show
type Icon int

const (
	IconPhone Icon = iota
	IconEmail
	IconHandle
)

// Glyph returns the character used to draw the icon with a regular text font
func (i Icon) Glyph() string {
	switch i {
	case IconPhone:
		return "☎"
	case IconEmail:
		return "✉"
	case IconHandle:
		return "@"
	}
	return "?"
}

func (i Icon) String() string {
	switch i {
	case IconPhone:
		return "phone"
	case IconEmail:
		return "email"
	case IconHandle:
		return "handle"
	}
	return "unknown"
}

// Arrange positions children along the main axis when none of them flex
type Arrange int

const (
	ArrangeStart Arrange = iota
	ArrangeCenter
	ArrangeEnd
)

// Align positions a child across the main axis
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// IconSize is the square size of an icon glyph
const IconSize = 24.0

// TextStyle describes how a text node is drawn
type TextStyle struct {
	Color  Color
	SizePt float64 `validate:"gt=0"`
	Weight Weight
	Family Family
}

// Insets are spacing values on the four sides of a box
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets with the same value on every side
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right insets
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns the sum of the top and bottom insets
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Rect is an axis-aligned rectangle in points
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rectangle by the given insets, never below zero size
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Horizontal(),
		H: r.H - in.Vertical(),
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Border is a stroke drawn just inside a node's box
type Border struct {
	Width float64
	Color Color
}

// Modifier carries the geometry and decoration shared by every node kind.
// Margin sits outside the border, Padding inside it.
type Modifier struct {
	Margin     Insets
	Padding    Insets
	Background Color
	Border     Border
	Radius     float64

	// Fixed border-box size; zero leaves the axis to measurement
	Width  float64
	Height float64

	FillWidth  bool
	FillHeight bool

	// Flex children share the space their parent has left along its main axis
	Flex   bool
	Weight float64
}

// Node is an immutable description of a screen region
type Node struct {
	Kind     Kind
	Name     string
	Modifier Modifier

	// Containers
	Arrange  Arrange
	Spacing  float64
	Align    Align
	Children []Node

	// Text
	Text  string
	Style TextStyle

	// Icon
	Icon              Icon
	Tint              Color
	AccessibilityName string

	// Image
	Image resources.Image
}

// Find returns the first node named name in a depth-first walk
func (n Node) Find(name string) (Node, bool) {
	if n.Name == name {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindAll returns every node named name in depth-first order
func (n Node) FindAll(name string) []Node {
	var out []Node
	if n.Name == name {
		out = append(out, n)
	}
	for _, c := range n.Children {
		out = append(out, c.FindAll(name)...)
	}
	return out
}
