package cli

import "nbfix/internal/config"

// Flags holds command-line flags
type Flags struct {
	Output     string
	NameFilter string
	Sources    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		NameFilter: f.NameFilter,
		Sources:    f.Sources,
	}
}
