// Package paths provides centralized path handling for pathvar.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/pathvar (config.toml or config.yaml)
//   - State:  $XDG_STATE_HOME/pathvar (session files, log file)
//
// # Environment Variables
//
//   - PATHVAR_CONFIG_DIR: Override the config directory
//   - PATHVAR_STATE_DIR: Override the state directory
//
// Values are resolved once, in New. Tests set the environment and call New
// again rather than mutating a shared instance.
package paths
