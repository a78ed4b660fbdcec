package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/placement"
)

func testSeed() *placement.Seed {
	output := command.NewCompilerOutput()
	output.AppendEvent(command.Event{
		Trigger: command.PseudoTriggerOf(command.PseudoReload),
		Action:  command.CommandAction(command.ItemMessage("hello")),
	})
	return &placement.Seed{
		Worlds: []*command.CompilerOutput{output},
		Spoiler: []placement.SpoilerEntry{
			{OriginWorld: 0, TargetWorld: 0, Location: "MarshSpawn.Pickup", Zone: "Marsh", Item: command.SpiritLightItem(50)},
		},
	}
}

func TestNewSpoilerAnnotatesWorldNames(t *testing.T) {
	seed := testSeed()
	spoiler := NewSpoiler(seed, []string{"Ori"})

	if len(spoiler.Worlds) != 1 || spoiler.Worlds[0].Name != "Ori" {
		t.Fatalf("expected world 0 named %q, got %+v", "Ori", spoiler.Worlds)
	}
	if len(spoiler.Placement) != 1 {
		t.Fatalf("expected 1 placement entry, got %d", len(spoiler.Placement))
	}
}

func TestNewSpoilerToleratesMissingPlayerNames(t *testing.T) {
	seed := testSeed()
	spoiler := NewSpoiler(seed, nil)

	if spoiler.Worlds[0].Name != "" {
		t.Fatalf("expected empty name when no player names supplied, got %q", spoiler.Worlds[0].Name)
	}
}

func TestSpoilerJSONRoundTrip(t *testing.T) {
	seed := testSeed()
	spoiler := NewSpoiler(seed, []string{"Ori"})

	data, err := spoiler.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded Spoiler
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Placement) != 1 || decoded.Placement[0].Location != "MarshSpawn.Pickup" {
		t.Fatalf("round-trip lost placement data: %+v", decoded.Placement)
	}
	if len(decoded.Outputs) != 1 || len(decoded.Outputs[0].Events) != 1 {
		t.Fatalf("round-trip lost output events: %+v", decoded.Outputs)
	}
}

func TestSpoilerJSONCompactIsSmallerThanIndented(t *testing.T) {
	spoiler := NewSpoiler(testSeed(), []string{"Ori"})

	indented, err := spoiler.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	compact, err := spoiler.JSONCompact()
	if err != nil {
		t.Fatalf("JSONCompact: %v", err)
	}
	if len(compact) >= len(indented) {
		t.Fatalf("expected compact output shorter than indented, got %d >= %d", len(compact), len(indented))
	}
}

func TestSaveJSONWritesFile(t *testing.T) {
	spoiler := NewSpoiler(testSeed(), []string{"Ori"})
	path := filepath.Join(t.TempDir(), "spoiler.json")

	if err := spoiler.SaveJSON(path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded Spoiler
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal saved file: %v", err)
	}
}

func TestSaveOutputJSONWritesFile(t *testing.T) {
	seed := testSeed()
	path := filepath.Join(t.TempDir(), "world_0.json")

	if err := SaveOutputJSON(seed.Worlds[0], path); err != nil {
		t.Fatalf("SaveOutputJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded command.CompilerOutput
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal saved output: %v", err)
	}
	if len(decoded.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(decoded.Events))
	}
}
