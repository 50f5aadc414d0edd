// Package config resolves ibox settings from built-in defaults, an optional
// YAML file and command-line overrides.
//
// # Configuration File Location
//
// The defaults file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ibox/config.yaml or $HOME/.config/ibox/config.yaml
//   - macOS: $HOME/.config/ibox/config.yaml
//   - Windows: %LOCALAPPDATA%\ibox\config.yaml
//
// A missing file is not an error. Example:
//
//	version: 1
//	border: curved
//	length: 12
//	presets:
//	  ascii: "+-+|++"
//
// # Borders
//
// A border is either a preset name or six literal glyphs in the order
// top-left, horizontal, top-right, vertical, bottom-left, bottom-right.
// Built-in presets come from lipgloss border definitions:
//
//	single  ┌─┐│└┘   (default)
//	double  ╔═╗║╚╝
//	thick   ┏━┓┃┗┛   (alias heavy)
//	curved  ╭─╮│╰╯   (alias rounded)
//	block   ██████
//	hidden  six spaces
//
// # Precedence
//
// Built-in defaults < config file < command-line flags.
package config
