package config

import (
	"strings"

	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/arthur-debert/pathvar/pkg/pathlist"
)

// Config is the complete pathvar configuration
type Config struct {
	Pathvar Pathvar `koanf:"pathvar"`
	Session Session `koanf:"session"`
	Output  Output  `koanf:"output"`
	Shell   Shell   `koanf:"shell"`
}

// Pathvar holds engine settings
type Pathvar struct {
	// Variable is edited when a command names no variable
	Variable string `koanf:"variable"`
	// Compare selects how remove and dedupe match entries
	Compare string `koanf:"compare"`
}

// Session holds session store settings
type Session struct {
	ID  string `koanf:"id"`
	Dir string `koanf:"dir"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format"`
}

// Shell holds settings for the env command
type Shell struct {
	Dialect string `koanf:"dialect"`
}

// CompareMode returns the parsed compare mode
func (c *Config) CompareMode() pathlist.CompareMode {
	mode, _ := pathlist.ParseCompareMode(c.Pathvar.Compare)
	return mode
}

// Validate checks values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Pathvar.Variable) == "" {
		return errors.New(errors.ErrConfigParse, "pathvar.variable must not be empty")
	}
	if _, err := pathlist.ParseCompareMode(c.Pathvar.Compare); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid pathvar.compare")
	}
	return nil
}
