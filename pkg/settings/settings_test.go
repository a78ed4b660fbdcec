package settings

import (
	"testing"

	"github.com/dshills/wotwseedgen/pkg/inventory"
	"gopkg.in/yaml.v3"
)

func TestUnmarshalWorldSettings(t *testing.T) {
	src := `
spawn: random
difficulty: gorlek
hard: true
`
	var ws WorldSettings
	if err := yaml.Unmarshal([]byte(src), &ws); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if ws.Spawn.Kind != SpawnRandom {
		t.Fatalf("expected random spawn, got %v", ws.Spawn.Kind)
	}
	if ws.Difficulty != inventory.Gorlek {
		t.Fatalf("expected Gorlek difficulty, got %v", ws.Difficulty)
	}
	if !ws.Hard {
		t.Fatalf("expected hard=true")
	}
}

func TestUnmarshalSetSpawn(t *testing.T) {
	var s Spawn
	if err := yaml.Unmarshal([]byte("MarshSpawn.Main"), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.Kind != SpawnSet || s.Location != "MarshSpawn.Main" {
		t.Fatalf("expected set spawn at MarshSpawn.Main, got %+v", s)
	}
}

func TestNewUniverseSettingsDefaults(t *testing.T) {
	u := NewUniverseSettings("my-seed")
	if u.WorldCount() != 1 {
		t.Fatalf("expected 1 world, got %d", u.WorldCount())
	}
	if u.WorldSettings[0].Difficulty != inventory.Moki {
		t.Fatalf("expected default Moki difficulty")
	}
}
