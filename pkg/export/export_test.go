package export

import (
	"bytes"
	"strings"
	"testing"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/widgets/card"
	"card-frame/widgets/contact"
	"card-frame/widgets/profile"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderJane(t *testing.T, contacts []contact.Entry) layout.Node {
	t.Helper()
	p := resources.Static{
		Images: map[string]resources.Image{
			"avatar": {ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}},
		},
	}
	data := profile.Data{ImageKey: "avatar", ImageDescription: "Portrait", Name: "Jane Doe", Title: "Engineer"}

	node, err := card.Render(p, data, settings.Default(), contacts)
	require.NoError(t, err)
	return node
}

var contacts = []contact.Entry{
	{Icon: layout.IconPhone, Label: "+1-555-0100", AccessibilityName: "Phone"},
	{Icon: layout.IconEmail, Label: "jane@x.com", AccessibilityName: "Mail"},
	{Icon: layout.IconHandle, Label: "@janedoe", AccessibilityName: "GitHub"},
}

func TestWriteHTML(t *testing.T) {
	node := renderJane(t, contacts)
	frame := layout.Solve(node, layout.Rect{W: 1080, H: 1920}, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, frame, "Jane Doe"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Jane Doe</title>")
	assert.Contains(t, out, "width:1080px;height:1920px")
	assert.Contains(t, out, `data-name="profile"`)
	assert.Contains(t, out, "left:32px;top:1312px;width:1016px;height:576px;")
	assert.Contains(t, out, `src="data:image/png;base64,iVBORw=="`)
	assert.Contains(t, out, `alt="Portrait"`)
	assert.Contains(t, out, `aria-label="Mail"`)
	assert.Contains(t, out, "font-family:serif;font-weight:600;font-size:24px")
	assert.Contains(t, out, "background:rgba(68,68,68,1)")

	phone := strings.Index(out, "+1-555-0100")
	email := strings.Index(out, "jane@x.com")
	handle := strings.Index(out, "@janedoe")
	require.True(t, phone > 0 && email > 0 && handle > 0)
	assert.Less(t, phone, email)
	assert.Less(t, email, handle)
}

func TestPreview(t *testing.T) {
	out := Preview(renderJane(t, contacts), 60)

	for _, want := range []string{"Jane Doe", "Engineer", "[ Portrait ]", "☎", "✉"} {
		assert.Contains(t, out, want)
	}
	phone := strings.Index(out, "+1-555-0100")
	email := strings.Index(out, "jane@x.com")
	handle := strings.Index(out, "@janedoe")
	require.True(t, phone > 0 && email > 0 && handle > 0)
	assert.Less(t, phone, email)
	assert.Less(t, email, handle)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestPreview_ProfileOnly(t *testing.T) {
	out := Preview(renderJane(t, nil), 40)

	assert.Contains(t, out, "Jane Doe")
	assert.NotContains(t, out, "@janedoe")
}
