package layout

// Frame is a node with its solved geometry.
//
// Rect is the space the parent allocated, Box is Rect minus the margin (where
// background and border are drawn) and Content is Box minus border and
// padding (where children or glyphs go).
type Frame struct {
	Node     Node
	Rect     Rect
	Box      Rect
	Content  Rect
	Children []Frame
}

// Solve assigns geometry to every node of root. The root frame always spans
// bounds. A nil measurer falls back to Estimate.
func Solve(root Node, bounds Rect, m Measurer) Frame {
	if m == nil {
		m = Estimate{}
	}
	return place(root, bounds, m)
}

func place(n Node, r Rect, m Measurer) Frame {
	f := Frame{Rect: r}
	f.Box = r.Inset(n.Modifier.Margin)
	f.Content = f.Box.Inset(Uniform(n.Modifier.Border.Width)).Inset(n.Modifier.Padding)

	switch n.Kind {
	case KindColumn:
		f.Children = arrange(n, f.Content, m, vertical)
	case KindRow:
		f.Children = arrange(n, f.Content, m, horizontal)
	}

	f.Node = n
	f.Node.Children = nil
	return f
}

type axis bool

const (
	horizontal axis = false
	vertical   axis = true
)

func (a axis) main(w, h float64) float64 {
	if a == vertical {
		return h
	}
	return w
}

func (a axis) cross(w, h float64) float64 {
	if a == vertical {
		return w
	}
	return h
}

func (a axis) fillsCross(mod Modifier) bool {
	if a == vertical {
		return mod.FillWidth
	}
	return mod.FillHeight
}

// measure sizes a child given room along both axes
func (a axis) measure(n Node, mainMax, crossMax float64, m Measurer) (mainSize, crossSize float64) {
	if a == vertical {
		w, h := measure(n, crossMax, mainMax, m)
		return h, w
	}
	w, h := measure(n, mainMax, crossMax, m)
	return w, h
}

func (a axis) rect(mainPos, mainSize, crossPos, crossSize float64) Rect {
	if a == vertical {
		return Rect{X: crossPos, Y: mainPos, W: crossSize, H: mainSize}
	}
	return Rect{X: mainPos, Y: crossPos, W: mainSize, H: crossSize}
}

// arrange lays the children of n out along ax inside content. Fixed children
// are measured in order against what is left; flex children then split the
// remainder by weight.
func arrange(n Node, content Rect, m Measurer, ax axis) []Frame {
	count := len(n.Children)
	if count == 0 {
		return nil
	}

	mainAvail := ax.main(content.W, content.H)
	crossAvail := ax.cross(content.W, content.H)
	gaps := n.Spacing * float64(count-1)

	mains := make([]float64, count)
	crosses := make([]float64, count)
	remaining := max(0, mainAvail-gaps)

	var flexTotal float64
	flexCount := 0
	for i, c := range n.Children {
		if c.Modifier.Flex {
			flexCount++
			flexTotal += max(0, c.Modifier.Weight)
			continue
		}
		mains[i], crosses[i] = ax.measure(c, remaining, crossAvail, m)
		remaining = max(0, remaining-mains[i])
	}

	for i, c := range n.Children {
		if !c.Modifier.Flex {
			continue
		}
		share := remaining / float64(flexCount)
		if flexTotal > 0 {
			share = remaining * max(0, c.Modifier.Weight) / flexTotal
		}
		mains[i] = share
		_, crosses[i] = ax.measure(c, share, crossAvail, m)
	}

	pos := ax.main(content.X, content.Y)
	if flexCount == 0 {
		used := gaps
		for _, s := range mains {
			used += s
		}
		free := max(0, mainAvail-used)
		switch n.Arrange {
		case ArrangeCenter:
			pos += free / 2
		case ArrangeEnd:
			pos += free
		}
	}

	frames := make([]Frame, 0, count)
	for i, c := range n.Children {
		cross := crosses[i]
		if ax.fillsCross(c.Modifier) {
			cross = crossAvail
		}
		crossPos := ax.cross(content.X, content.Y)
		switch n.Align {
		case AlignCenter:
			crossPos += (crossAvail - cross) / 2
		case AlignEnd:
			crossPos += crossAvail - cross
		}
		frames = append(frames, place(c, ax.rect(pos, mains[i], crossPos, cross), m))
		pos += mains[i] + n.Spacing
	}
	return frames
}

// Find returns the first frame whose node is named name
func (f Frame) Find(name string) (Frame, bool) {
	if f.Node.Name == name {
		return f, true
	}
	for _, c := range f.Children {
		if found, ok := c.Find(name); ok {
			return found, true
		}
	}
	return Frame{}, false
}

// Walk calls fn for f and every descendant, parents first
func (f Frame) Walk(fn func(Frame)) {
	fn(f)
	for _, c := range f.Children {
		c.Walk(fn)
	}
}
