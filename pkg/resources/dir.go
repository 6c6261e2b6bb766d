package resources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// StringsFile holds the key -> string table, relative to the resource root
	StringsFile = "strings.json"
	// ImagesDir holds one file per image key, relative to the resource root
	ImagesDir = "images"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// DirProvider serves resources from a directory tree:
//
//	<root>/strings.json      {"name_text": "Jane Doe", ...}
//	<root>/images/<key>.png
type DirProvider struct {
	fs      afero.Fs
	root    string
	strings map[string]string
}

// NewDirProvider reads the string table under root. A missing table is an
// empty table; a malformed one is an error.
func NewDirProvider(fs afero.Fs, root string) (*DirProvider, error) {
	p := &DirProvider{fs: fs, root: root, strings: map[string]string{}}

	data, err := afero.ReadFile(fs, filepath.Join(root, StringsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", StringsFile, err)
	}
	if err := json.Unmarshal(data, &p.strings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", StringsFile, err)
	}
	return p, nil
}

// ResolveString implements Provider
func (p *DirProvider) ResolveString(key string) (string, error) {
	v, ok := p.strings[key]
	if !ok {
		return "", notFound("string", key)
	}
	return v, nil
}

// ResolveImage implements Provider. The first file named key with a known
// image extension wins.
func (p *DirProvider) ResolveImage(key string) (Image, error) {
	for _, ext := range imageExtensions {
		path := filepath.Join(p.root, ImagesDir, key+ext)
		data, err := afero.ReadFile(p.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Image{}, fmt.Errorf("failed to read image %s: %w", path, err)
		}
		return Image{Key: key, ContentType: http.DetectContentType(data), Data: data}, nil
	}
	return Image{}, notFound("image", key)
}
