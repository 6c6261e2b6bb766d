package cardsource

import (
	"testing"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/widgets/card"
	"card-frame/widgets/contact"
	"card-frame/widgets/profile"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stringsJSON = `{
	"android_logo_image": "Portrait",
	"name_text": "Jane Doe",
	"title_text": "Engineer",
	"mobile_no_text": "+1-555-0100",
	"phone_icon_text": "Phone",
	"mail_address_text": "jane@x.com",
	"mail_icon_text": "Mail",
	"github_link_text": "@janedoe",
	"github_icon_text": "GitHub"
}`

func newFs(t *testing.T, withImage bool) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "assets/card/strings.json", []byte(stringsJSON), 0644))
	if withImage {
		require.NoError(t, afero.WriteFile(fs, "assets/card/images/android_logo.png", []byte("\x89PNG\r\n\x1a\n"), 0644))
	}
	return fs
}

func TestBuild(t *testing.T) {
	fs := newFs(t, true)
	require.NoError(t, afero.WriteFile(fs, "card.json", []byte(`{"accent":"#FF0000"}`), 0644))
	src := FromEnv(fs, settings.Env{ConfigPath: "card.json", ResourcesDir: "assets/card", Contacts: true})

	node, err := src.Build()
	require.NoError(t, err)

	assert.Len(t, node.FindAll(contact.NodeRow), 3)
	title, ok := node.Find(profile.NodeTitle)
	require.True(t, ok)
	assert.Equal(t, "Engineer", title.Text)
	assert.Equal(t, layout.Hex(0xFF0000), title.Style.Color)
}

func TestBuild_WithoutContacts(t *testing.T) {
	src := Source{Fs: newFs(t, true), ConfigPath: "card.json", ResourcesDir: "assets/card", Keys: card.DefaultKeys}

	node, err := src.Build()
	require.NoError(t, err)

	assert.Len(t, node.Children, 1)
	_, ok := node.Find(contact.NodeSection)
	assert.False(t, ok)
}

func TestBuild_BadConfigFallsBackToDefaults(t *testing.T) {
	fs := newFs(t, true)
	require.NoError(t, afero.WriteFile(fs, "card.json", []byte(`{"profileWeight": -3}`), 0644))
	src := Source{Fs: fs, ConfigPath: "card.json", ResourcesDir: "assets/card", Keys: card.DefaultKeys, Contacts: true}

	node, err := src.Build()
	require.NoError(t, err)

	p, ok := node.Find(profile.NodeSection)
	require.True(t, ok)
	assert.Equal(t, settings.Default().ProfileWeight, p.Modifier.Weight)
}

func TestBuild_MissingImage(t *testing.T) {
	src := Source{Fs: newFs(t, false), ConfigPath: "card.json", ResourcesDir: "assets/card", Keys: card.DefaultKeys}

	node, err := src.Build()

	assert.ErrorIs(t, err, resources.ErrResourceNotFound)
	assert.Equal(t, layout.Node{}, node)
}

func TestSync_NoBucketIsNoop(t *testing.T) {
	src := Source{Fs: afero.NewMemMapFs(), ResourcesDir: "assets/card"}

	assert.NoError(t, src.Sync(nil, settings.Env{}))
}
