package ui

import (
	"fmt"

	"card-frame/pkg/resources"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Images decodes resource images into textures, once per key. A key that
// fails to decode is remembered until Reset so it is not retried every frame.
type Images struct {
	renderer *sdl.Renderer
	textures map[string]*sdl.Texture
	failed   map[string]bool
}

// NewImages initializes SDL_image for PNG and JPEG
func NewImages(renderer *sdl.Renderer) (*Images, error) {
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL_image: %v", err)
	}
	return &Images{
		renderer: renderer,
		textures: make(map[string]*sdl.Texture),
		failed:   make(map[string]bool),
	}, nil
}

// Texture returns the texture for res, decoding it on first use. The first
// decode failure for a key is returned as an error; later calls for that key
// return a nil texture and no error until Reset.
func (i *Images) Texture(res resources.Image) (*sdl.Texture, error) {
	if tex, ok := i.textures[res.Key]; ok {
		return tex, nil
	}
	if i.failed[res.Key] {
		return nil, nil
	}

	tex, err := i.decode(res)
	if err != nil {
		i.failed[res.Key] = true
		return nil, fmt.Errorf("image %q: %v", res.Key, err)
	}
	i.textures[res.Key] = tex
	return tex, nil
}

func (i *Images) decode(res resources.Image) (*sdl.Texture, error) {
	if len(res.Data) == 0 {
		return nil, fmt.Errorf("no image data")
	}
	rw, err := sdl.RWFromMem(res.Data)
	if err != nil {
		return nil, err
	}
	return img.LoadTextureRW(i.renderer, rw, true)
}

// Reset drops every cached texture and failure so changed images are
// decoded again
func (i *Images) Reset() {
	for key, tex := range i.textures {
		tex.Destroy()
		delete(i.textures, key)
	}
	clear(i.failed)
}

// Close releases textures and SDL_image
func (i *Images) Close() {
	i.Reset()
	img.Quit()
}
