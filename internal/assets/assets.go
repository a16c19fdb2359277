package assets

import _ "embed"

//go:embed commands.yaml
var defaultCommands []byte

// DefaultCommands returns the compiled-in command allow-list document.
func DefaultCommands() []byte {
	out := make([]byte, len(defaultCommands))
	copy(out, defaultCommands)
	return out
}
