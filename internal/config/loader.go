package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var current Commands

// Get returns the allow-list loaded at startup.
func Get() Commands { return current }

// LoadCommands parses and validates an allow-list document and makes it the
// current one.
func LoadCommands(data []byte) (Commands, error) {
	var cmds Commands
	if err := yaml.Unmarshal(data, &cmds); err != nil {
		return Commands{}, fmt.Errorf("commands: %w", err)
	}
	if err := ValidateAgainstSchema(cmds); err != nil {
		return Commands{}, err
	}
	if err := ValidateNoDuplicates(cmds); err != nil {
		return Commands{}, err
	}
	current = cmds
	return cmds, nil
}

func ValidateNoDuplicates(cmds Commands) error {
	seen := map[string]struct{}{}
	for _, c := range cmds.Commands {
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("duplicate command name: %s", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
