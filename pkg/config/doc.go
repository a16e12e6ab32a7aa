// Package config handles configuration management for pathvar.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user config file: --config, or the first of
//     $XDG_CONFIG_HOME/pathvar/config.toml and config.yaml that exists
//  3. PATHVAR_* environment variables (PATHVAR_OUTPUT_FORMAT -> output.format)
//  4. Explicit overrides, normally command-line flags
package config
