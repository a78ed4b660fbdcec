package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/placement"
)

// SpoilerWorld names a world for display in a spoiler document: player names
// are per-world, not part of the core's Seed type.
type SpoilerWorld struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Spoiler is the serializable wrapper around a generated placement.Seed: one
// CompilerOutput per world plus the placement log, annotated with the
// player-name vector from UniverseSettings. It records, per placement, the
// origin world, target world, pickup identifier, zone, and action.
type Spoiler struct {
	Worlds    []SpoilerWorld          `json:"worlds"`
	Outputs   []*command.CompilerOutput `json:"outputs"`
	Placement []placement.SpoilerEntry `json:"placements"`
}

// NewSpoiler builds a Spoiler document from a generated seed and the
// multi-world player-name vector configured for the universe.
func NewSpoiler(seed *placement.Seed, playerNames []string) *Spoiler {
	worlds := make([]SpoilerWorld, len(seed.Worlds))
	for i := range seed.Worlds {
		name := ""
		if i < len(playerNames) {
			name = playerNames[i]
		}
		worlds[i] = SpoilerWorld{Index: i, Name: name}
	}
	return &Spoiler{Worlds: worlds, Outputs: seed.Worlds, Placement: seed.Spoiler}
}

// JSON serializes the spoiler document with 2-space indentation for
// readability.
func (s *Spoiler) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// JSONCompact serializes the spoiler document without indentation, suitable
// for storage or transmission alongside the packaged seed.
func (s *Spoiler) JSONCompact() ([]byte, error) {
	return json.Marshal(s)
}

// SaveJSON writes the spoiler document to path as indented JSON.
func (s *Spoiler) SaveJSON(path string) error {
	data, err := s.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveOutputJSON serializes a single world's CompilerOutput to path: the
// per-world seed file a packager would place alongside the spoiler.
func SaveOutputJSON(output *command.CompilerOutput, path string) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
