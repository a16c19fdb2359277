package config

// Config is the run configuration for one invocation.
type Config struct {
	Query      string
	Target     string
	IgnoreCase bool
}

// CommandSpec names an external command whose output may be searched.
type CommandSpec struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Commands is the allow-list document.
type Commands struct {
	Commands []CommandSpec `yaml:"commands" json:"commands"`
}

// Contains reports whether name is on the allow-list.
func (c Commands) Contains(name string) bool {
	for _, s := range c.Commands {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Names returns the allow-listed command names in declaration order.
func (c Commands) Names() []string {
	out := make([]string, 0, len(c.Commands))
	for _, s := range c.Commands {
		out = append(out, s.Name)
	}
	return out
}
