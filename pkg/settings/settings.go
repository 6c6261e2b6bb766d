package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"card-frame/pkg/layout"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// ProfileVariant selects how the profile section is framed
type ProfileVariant string

const (
	// VariantCard draws the profile inside a bordered, filled card
	VariantCard ProfileVariant = "card"
	// VariantPlain draws the profile as a bare padded column
	VariantPlain ProfileVariant = "plain"
)

// CardConfig holds the colors, borders and section weights of a card. It is
// read from a JSON file so a frame can be restyled without a rebuild.
type CardConfig struct {
	Background     layout.Color   `json:"background"`
	CardBackground layout.Color   `json:"cardBackground"`
	BorderColor    layout.Color   `json:"borderColor"`
	Accent         layout.Color   `json:"accent"`
	CornerRadius   float64        `json:"cornerRadius" validate:"gte=0"`
	BorderWidth    float64        `json:"borderWidth" validate:"gte=0"`
	ProfileWeight  float64        `json:"profileWeight" validate:"gte=0"`
	ContactWeight  float64        `json:"contactWeight" validate:"gte=0"`
	ProfileVariant ProfileVariant `json:"profileVariant" validate:"oneof=card plain"`
}

// Default returns the stock dark card with a two-thirds / one-third split
func Default() CardConfig {
	return CardConfig{
		Background:     layout.DarkGray,
		CardBackground: layout.Black.WithAlpha(0.5),
		BorderColor:    layout.Gray,
		Accent:         layout.Hex(0x3CD982),
		CornerRadius:   10,
		BorderWidth:    2,
		ProfileWeight:  1.5,
		ContactWeight:  0.75,
		ProfileVariant: VariantCard,
	}
}

var validate = validator.New()

// Validate checks the config invariants
func (c CardConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid card config: %w", err)
	}
	return nil
}

// Load reads a card config from path. A missing file yields the defaults.
// Fields absent from the file keep their default values. When the file is
// malformed or fails validation the defaults are returned together with the
// error so the caller can log it and carry on.
func Load(fs afero.Fs, path string) (CardConfig, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	defer f.Close()

	cfg := Default()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed
func Save(fs afero.Fs, path string, c CardConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
