package card

import (
	"testing"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/widgets/contact"
	"card-frame/widgets/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	screen = layout.Rect{W: 1080, H: 1920}

	jane = profile.Data{ImageKey: "avatar", Name: "Jane Doe", Title: "Engineer"}

	janeContacts = []contact.Entry{
		{Icon: layout.IconPhone, Label: "+1-555-0100"},
		{Icon: layout.IconEmail, Label: "jane@x.com"},
		{Icon: layout.IconHandle, Label: "@janedoe"},
	}

	provider = resources.Static{
		Strings: map[string]string{
			"android_logo_image": "Portrait",
			"name_text":          "Jane Doe",
			"title_text":         "Engineer",
			"mobile_no_text":     "+1-555-0100",
			"phone_icon_text":    "Phone",
			"mail_address_text":  "jane@x.com",
			"mail_icon_text":     "Mail",
			"github_link_text":   "@janedoe",
			"github_icon_text":   "GitHub",
		},
		Images: map[string]resources.Image{
			"avatar":       {Data: []byte("png")},
			"android_logo": {Data: []byte("png")},
		},
	}
)

func TestRender_ProfileOnlyTakesFullHeight(t *testing.T) {
	node, err := Render(provider, jane, settings.Default(), nil)
	require.NoError(t, err)

	frame := layout.Solve(node, screen, nil)

	assert.Equal(t, screen, frame.Rect)
	require.Len(t, frame.Children, 1)
	assert.Equal(t, profile.NodeSection, frame.Children[0].Node.Name)
	assert.InDelta(t, screen.H, frame.Children[0].Rect.H, 1e-9)
	_, ok := frame.Find(contact.NodeSection)
	assert.False(t, ok)

	empty, err := Render(provider, jane, settings.Default(), []contact.Entry{})
	require.NoError(t, err)
	assert.Equal(t, node, empty)
}

func TestRender_WithContacts(t *testing.T) {
	node, err := Render(provider, jane, settings.Default(), janeContacts)
	require.NoError(t, err)

	frame := layout.Solve(node, screen, nil)

	profileFrame, ok := frame.Find(profile.NodeSection)
	require.True(t, ok)
	contactFrame, ok := frame.Find(contact.NodeSection)
	require.True(t, ok)

	assert.InDelta(t, 2.0/3.0, profileFrame.Rect.H/screen.H, 1e-9)
	assert.InDelta(t, 1.0/3.0, contactFrame.Rect.H/screen.H, 1e-9)
	assert.InDelta(t, profileFrame.Rect.H, contactFrame.Rect.Y, 1e-9)

	rows := node.FindAll(contact.NodeRow)
	require.Len(t, rows, 3)
	wantIcons := []layout.Icon{layout.IconPhone, layout.IconEmail, layout.IconHandle}
	for i, row := range rows {
		assert.Equal(t, wantIcons[i], row.Children[0].Icon)
		assert.Equal(t, janeContacts[i].Label, row.Children[1].Text)
	}

	// Rows sit inside the contact card, in order, top to bottom
	var lastY float64
	for _, row := range contactFrame.Children {
		assert.Greater(t, row.Rect.Y, lastY)
		assert.GreaterOrEqual(t, row.Rect.Y, contactFrame.Content.Y)
		assert.LessOrEqual(t, row.Rect.Y+row.Rect.H, contactFrame.Content.Y+contactFrame.Content.H)
		lastY = row.Rect.Y
	}
}

func TestRender_WeightLaw(t *testing.T) {
	tests := []struct{ profile, contact float64 }{
		{1.5, 0.75},
		{1, 1},
		{3, 1},
		{0.2, 0.8},
	}

	for _, tt := range tests {
		cfg := settings.Default()
		cfg.ProfileWeight = tt.profile
		cfg.ContactWeight = tt.contact

		node, err := Render(provider, jane, cfg, janeContacts)
		require.NoError(t, err)
		frame := layout.Solve(node, screen, nil)

		profileFrame, ok := frame.Find(profile.NodeSection)
		require.True(t, ok)
		assert.InDelta(t, tt.profile/(tt.profile+tt.contact), profileFrame.Rect.H/screen.H, 1e-9)
	}
}

func TestRender_UnknownImage(t *testing.T) {
	missing := jane
	missing.ImageKey = "unregistered"

	node, err := Render(provider, missing, settings.Default(), janeContacts)

	assert.ErrorIs(t, err, resources.ErrResourceNotFound)
	assert.Equal(t, layout.Node{}, node)
}

func TestRender_Idempotent(t *testing.T) {
	a, err := Render(provider, jane, settings.Default(), janeContacts)
	require.NoError(t, err)
	b, err := Render(provider, jane, settings.Default(), janeContacts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, layout.Solve(a, screen, nil), layout.Solve(b, screen, nil))
}

func TestRender_Background(t *testing.T) {
	cfg := settings.Default()
	node, err := Render(provider, jane, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, NodeRoot, node.Name)
	assert.Equal(t, cfg.Background, node.Modifier.Background)
	assert.True(t, node.Modifier.FillWidth)
	assert.True(t, node.Modifier.FillHeight)
}

func TestLoad(t *testing.T) {
	data, entries, err := Load(provider, DefaultKeys)
	require.NoError(t, err)

	assert.Equal(t, profile.Data{
		ImageKey:         "android_logo",
		ImageDescription: "Portrait",
		Name:             "Jane Doe",
		Title:            "Engineer",
	}, data)
	assert.Equal(t, []contact.Entry{
		{Icon: layout.IconPhone, Label: "+1-555-0100", AccessibilityName: "Phone"},
		{Icon: layout.IconEmail, Label: "jane@x.com", AccessibilityName: "Mail"},
		{Icon: layout.IconHandle, Label: "@janedoe", AccessibilityName: "GitHub"},
	}, entries)

	_, err = Render(provider, data, settings.Default(), entries)
	assert.NoError(t, err)
}

func TestLoad_MissingString(t *testing.T) {
	keys := DefaultKeys
	keys.Email = "nope"

	_, entries, err := Load(provider, keys)

	assert.ErrorIs(t, err, resources.ErrResourceNotFound)
	assert.Nil(t, entries)
}
