package settings

import (
	"os"
	"strconv"
)

// Env is the host configuration taken from the process environment (and .env)
type Env struct {
	Title        string
	ConfigPath   string
	ResourcesDir string
	S3Bucket     string
	S3Prefix     string
	Contacts     bool
}

// FromEnv reads CARD_* variables, falling back to defaults for unset ones
func FromEnv() Env {
	return Env{
		Title:        getenv("CARD_TITLE", "Business Card"),
		ConfigPath:   getenv("CARD_CONFIG", "card.json"),
		ResourcesDir: getenv("CARD_RESOURCES", "assets/card"),
		S3Bucket:     os.Getenv("CARD_S3_BUCKET"),
		S3Prefix:     os.Getenv("CARD_S3_PREFIX"),
		Contacts:     getbool("CARD_CONTACTS", true),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
