// Package cardsource assembles a card from the files on a frame: the JSON
// config and the resource directory (optionally mirrored from S3 first).
package cardsource

import (
	"log"

	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/widgets/card"

	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/spf13/afero"
)

// Source says where a card's inputs live
type Source struct {
	Fs           afero.Fs
	ConfigPath   string
	ResourcesDir string
	Keys         card.Keys
	Contacts     bool
}

// FromEnv builds a Source over fs from the host environment
func FromEnv(fs afero.Fs, env settings.Env) Source {
	return Source{
		Fs:           fs,
		ConfigPath:   env.ConfigPath,
		ResourcesDir: env.ResourcesDir,
		Keys:         card.DefaultKeys,
		Contacts:     env.Contacts,
	}
}

// Build reads the inputs afresh and renders the card. A bad config file is
// logged and replaced by the defaults; a missing resource fails the build.
func (s Source) Build() (layout.Node, error) {
	cfg, err := settings.Load(s.Fs, s.ConfigPath)
	if err != nil {
		log.Printf("Warning: using default card config: %v", err)
	}

	provider, err := resources.NewDirProvider(s.Fs, s.ResourcesDir)
	if err != nil {
		return layout.Node{}, err
	}

	data, contacts, err := card.Load(provider, s.Keys)
	if err != nil {
		return layout.Node{}, err
	}
	if !s.Contacts {
		contacts = nil
	}
	return card.Render(provider, data, cfg, contacts)
}

// Sync mirrors the S3 folder named by env into the resource directory. It
// does nothing when no bucket is configured.
func (s Source) Sync(client s3iface.S3API, env settings.Env) error {
	if env.S3Bucket == "" {
		return nil
	}
	_, err := resources.SyncFromS3(client, resources.S3Source{Bucket: env.S3Bucket, Prefix: env.S3Prefix}, s.Fs, s.ResourcesDir)
	return err
}
