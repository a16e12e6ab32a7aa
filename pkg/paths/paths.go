package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathvar/pkg/errors"
)

// Environment variable names
const (
	// EnvPathvarConfigDir overrides the XDG config directory for pathvar
	EnvPathvarConfigDir = "PATHVAR_CONFIG_DIR"

	// EnvPathvarStateDir overrides the XDG state directory for pathvar
	EnvPathvarStateDir = "PATHVAR_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for pathvar-specific files
	AppDirName = "pathvar"

	// ConfigFileTOML is the preferred user config file name
	ConfigFileTOML = "config.toml"

	// ConfigFileYAML is the alternative user config file name
	ConfigFileYAML = "config.yaml"

	// SessionsDir is the state subdirectory for session files
	SessionsDir = "sessions"

	// SessionFileExt is the extension of session files
	SessionFileExt = ".toml"

	// LogFileName is the name of the log file
	LogFileName = "pathvar.log"
)

// Paths provides centralized path management for pathvar
type Paths interface {
	ConfigDir() string
	ConfigFiles() []string
	StateDir() string
	SessionsDir() string
	SessionPath(id string) string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance from the environment
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvPathvarConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		p.configDir = filepath.Join(dir, AppDirName)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvPathvarStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		p.stateDir = filepath.Join(dir, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFiles returns the candidate user config files in preference order
func (p *paths) ConfigFiles() []string {
	return []string{
		filepath.Join(p.configDir, ConfigFileTOML),
		filepath.Join(p.configDir, ConfigFileYAML),
	}
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) SessionsDir() string {
	return filepath.Join(p.stateDir, SessionsDir)
}

// SessionPath returns the session file for id in the sessions directory
func (p *paths) SessionPath(id string) string {
	return SessionFile(p.SessionsDir(), id)
}

// SessionFile returns the session file for id inside dir. Path separators
// in id are replaced so a session id can never escape dir.
func SessionFile(dir, id string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id)
	return filepath.Join(expandHome(dir), safe+SessionFileExt)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
