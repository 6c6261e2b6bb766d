// Package resources supplies the strings and images a card is built from.
package resources

import (
	"errors"
	"fmt"
)

// ErrResourceNotFound is returned (wrapped) when a key has no registered value
var ErrResourceNotFound = errors.New("resource not found")

// Image is an opaque, encoded image and the key it was registered under
type Image struct {
	Key         string
	ContentType string
	Data        []byte
}

// Provider resolves resource keys. Lookups are synchronous and have no side
// effects for a given key.
type Provider interface {
	ResolveString(key string) (string, error)
	ResolveImage(key string) (Image, error)
}

func notFound(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrResourceNotFound, kind, key)
}

// Static is a Provider backed by in-memory maps
type Static struct {
	Strings map[string]string
	Images  map[string]Image
}

// ResolveString implements Provider
func (s Static) ResolveString(key string) (string, error) {
	v, ok := s.Strings[key]
	if !ok {
		return "", notFound("string", key)
	}
	return v, nil
}

// ResolveImage implements Provider
func (s Static) ResolveImage(key string) (Image, error) {
	img, ok := s.Images[key]
	if !ok {
		return Image{}, notFound("image", key)
	}
	if img.Key == "" {
		img.Key = key
	}
	return img, nil
}
