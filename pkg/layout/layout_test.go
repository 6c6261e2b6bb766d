package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillNode(name string, flex bool, weight float64) Node {
	return Node{
		Kind: KindColumn,
		Name: name,
		Modifier: Modifier{
			FillWidth:  true,
			FillHeight: true,
			Flex:       flex,
			Weight:     weight,
		},
	}
}

func TestSolve_RootSpansBounds(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 1080, H: 1920}
	root := Node{Kind: KindColumn, Name: "root"}

	f := Solve(root, bounds, nil)

	assert.Equal(t, bounds, f.Rect)
	assert.Equal(t, bounds, f.Content)
}

func TestSolve_WeightDistribution(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    []float64
	}{
		{name: "two thirds one third", weights: []float64{1.5, 0.75}, want: []float64{1280, 640}},
		{name: "even", weights: []float64{1, 1}, want: []float64{960, 960}},
		{name: "single child takes all", weights: []float64{1.5}, want: []float64{1920}},
		{name: "zero weight gets nothing", weights: []float64{2, 0}, want: []float64{1920, 0}},
		{name: "all zero splits evenly", weights: []float64{0, 0}, want: []float64{960, 960}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Node{Kind: KindColumn, Name: "root"}
			for i, w := range tt.weights {
				root.Children = append(root.Children, fillNode(string(rune('a'+i)), true, w))
			}

			f := Solve(root, Rect{W: 1080, H: 1920}, nil)

			require.Len(t, f.Children, len(tt.want))
			y := 0.0
			for i, want := range tt.want {
				assert.InDelta(t, want, f.Children[i].Rect.H, 1e-9)
				assert.InDelta(t, y, f.Children[i].Rect.Y, 1e-9)
				assert.InDelta(t, 1080, f.Children[i].Rect.W, 1e-9)
				y += want
			}
		})
	}
}

func TestSolve_FlexSharesWhatFixedChildrenLeave(t *testing.T) {
	root := Node{
		Kind: KindColumn,
		Children: []Node{
			{Kind: KindColumn, Name: "header", Modifier: Modifier{Height: 100, FillWidth: true}},
			fillNode("body", true, 1),
		},
	}

	f := Solve(root, Rect{W: 400, H: 1000}, nil)

	body, ok := f.Find("body")
	require.True(t, ok)
	assert.InDelta(t, 100, body.Rect.Y, 1e-9)
	assert.InDelta(t, 900, body.Rect.H, 1e-9)
}

func TestSolve_CenteredColumn(t *testing.T) {
	root := Node{
		Kind:    KindColumn,
		Arrange: ArrangeCenter,
		Align:   AlignCenter,
		Children: []Node{
			{Kind: KindImage, Name: "img", Modifier: Modifier{Width: 200, Height: 200}},
			{Kind: KindImage, Name: "img2", Modifier: Modifier{Width: 100, Height: 100, Margin: Insets{Top: 20}}},
		},
	}

	f := Solve(root, Rect{W: 1000, H: 1000}, nil)

	img := f.Children[0]
	assert.Equal(t, Rect{X: 400, Y: 340, W: 200, H: 200}, img.Rect)
	img2 := f.Children[1]
	assert.Equal(t, Rect{X: 450, Y: 540, W: 100, H: 120}, img2.Rect)
	assert.Equal(t, Rect{X: 450, Y: 560, W: 100, H: 100}, img2.Box)
}

func TestSolve_MarginBorderPadding(t *testing.T) {
	root := Node{
		Kind: KindColumn,
		Modifier: Modifier{
			Margin:  Uniform(32),
			Border:  Border{Width: 2},
			Padding: Insets{Left: 10},
		},
	}

	f := Solve(root, Rect{W: 500, H: 300}, nil)

	assert.Equal(t, Rect{X: 32, Y: 32, W: 436, H: 236}, f.Box)
	assert.Equal(t, Rect{X: 44, Y: 34, W: 422, H: 232}, f.Content)
}

func TestSolve_RowSpacingAndFlexText(t *testing.T) {
	style := TextStyle{SizePt: 10}
	row := Node{
		Kind:     KindRow,
		Spacing:  16,
		Align:    AlignCenter,
		Modifier: Modifier{Padding: Insets{Left: 28}},
		Children: []Node{
			{Kind: KindIcon, Name: "icon"},
			{Kind: KindText, Name: "label", Text: "abc", Style: style, Modifier: Modifier{Flex: true, Weight: 1}},
		},
	}

	f := Solve(row, Rect{W: 300, H: 40}, nil)

	icon, _ := f.Find("icon")
	label, _ := f.Find("label")
	assert.InDelta(t, 28, icon.Rect.X, 1e-9)
	assert.InDelta(t, IconSize, icon.Rect.W, 1e-9)
	assert.InDelta(t, 8, icon.Rect.Y, 1e-9)
	assert.InDelta(t, 28+IconSize+16, label.Rect.X, 1e-9)
	assert.InDelta(t, 300-28-IconSize-16, label.Rect.W, 1e-9)
	assert.InDelta(t, 14, label.Rect.Y, 1e-9)
}

func TestSolve_Idempotent(t *testing.T) {
	root := Node{
		Kind: KindColumn,
		Children: []Node{
			fillNode("a", true, 1.5),
			fillNode("b", true, 0.75),
		},
	}
	bounds := Rect{W: 720, H: 1280}

	assert.Equal(t, Solve(root, bounds, nil), Solve(root, bounds, nil))
}

func TestRoundedSpan(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}

	x0, x1, ok := RoundedSpan(r, 10, 25)
	require.True(t, ok)
	assert.Equal(t, 0.0, x0)
	assert.Equal(t, 100.0, x1)

	x0, x1, ok = RoundedSpan(r, 10, 0)
	require.True(t, ok)
	assert.InDelta(t, 10, x0, 1e-9)
	assert.InDelta(t, 90, x1, 1e-9)

	_, _, ok = RoundedSpan(r, 10, 50)
	assert.False(t, ok)

	x0, x1, ok = RoundedSpan(r, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, x0)
	assert.Equal(t, 100.0, x1)
}

func TestColor_Text(t *testing.T) {
	c, err := ParseColor("#3CD982")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x3C, 0xD9, 0x82), c)

	c, err = ParseColor("#00000080")
	require.NoError(t, err)
	assert.Equal(t, Color{A: 0x80}, c)
	assert.Equal(t, "#00000080", c.String())

	_, err = ParseColor("green")
	assert.Error(t, err)

	var decoded struct{ C Color }
	require.NoError(t, json.Unmarshal([]byte(`{"C":"#444444"}`), &decoded))
	assert.Equal(t, DarkGray, decoded.C)

	assert.Equal(t, uint8(128), Black.WithAlpha(0.5).A)
}

func TestTextStyle_Validate(t *testing.T) {
	assert.NoError(t, TextStyle{SizePt: 12}.Validate())
	assert.Error(t, TextStyle{}.Validate())
}

func TestNode_FindAll(t *testing.T) {
	root := Node{
		Kind: KindColumn,
		Children: []Node{
			{Kind: KindRow, Name: "row", Text: "1"},
			{Kind: KindColumn, Children: []Node{{Kind: KindRow, Name: "row", Text: "2"}}},
		},
	}

	rows := root.FindAll("row")
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].Text)
	assert.Equal(t, "2", rows[1].Text)
}
