package inventory

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty is the logic difficulty a seed is generated for. It gates which
// requirements the player is assumed able to perform and parametrizes the
// derived-stat formulas in this package.
type Difficulty int

const (
	Moki Difficulty = iota
	Gorlek
	Kii
	Unsafe
)

func (d Difficulty) String() string {
	switch d {
	case Moki:
		return "Moki"
	case Gorlek:
		return "Gorlek"
	case Kii:
		return "Kii"
	case Unsafe:
		return "Unsafe"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// UnmarshalYAML decodes the lowercase serialization used by settings files.
func (d *Difficulty) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "moki", "":
		*d = Moki
	case "gorlek":
		*d = Gorlek
	case "kii":
		*d = Kii
	case "unsafe":
		*d = Unsafe
	default:
		return fmt.Errorf("inventory: unknown difficulty %q", raw)
	}
	return nil
}

// MarshalYAML encodes the difficulty using the same lowercase convention.
func (d Difficulty) MarshalYAML() (interface{}, error) {
	return strings.ToLower(d.String()), nil
}

// AtLeast reports whether d is at least as permissive as other, using the
// declaration order Moki < Gorlek < Kii < Unsafe.
func (d Difficulty) AtLeast(other Difficulty) bool {
	return d >= other
}

// Settings bundles the small set of world settings the derived-stat formulas
// in this package need, decoupled from the full pkg/settings.WorldSettings.
type Settings struct {
	Difficulty Difficulty
	Hard       bool
}
