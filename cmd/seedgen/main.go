// Command seedgen is a thin CLI front-end around the placement core: load
// UniverseSettings from YAML, generate a seed against a logic graph, and
// write the resulting per-world seed files plus a spoiler JSON.
//
// The logic graph itself, the snippet compiler, and final tar/zip seed
// packaging are handled by separate tools; this binary stands in a small
// representative demo graph (see graph.go) where a full build would call
// out to the graph compiler.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/wotwseedgen/pkg/command"
	"github.com/dshills/wotwseedgen/pkg/export"
	"github.com/dshills/wotwseedgen/pkg/placement"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/validation"
	"gopkg.in/yaml.v3"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML universe settings file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	seedFlag   = flag.String("seed", "", "Override the seed string from config")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("seedgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading universe settings from %s\n", *configPath)
	}

	universe, err := loadUniverseSettings(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if *seedFlag != "" {
		if *verbose {
			fmt.Printf("Overriding seed from %q to %q\n", universe.Seed, *seedFlag)
		}
		universe.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %q\n", universe.Seed)
		fmt.Printf("World count: %d\n", universe.WorldCount())
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	graph := buildDemoGraph()
	outputs := make([]*command.CompilerOutput, universe.WorldCount())
	for i := range outputs {
		outputs[i] = command.NewCompilerOutput()
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating seed...")
	}

	seed, err := placement.Generate(graph, universe, outputs)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(seed)
	}

	report := validation.Validate(graph, universe, seed)
	if *verbose {
		printValidation(report)
	}
	if !report.Passed {
		fmt.Fprintln(os.Stderr, "Warning: generated seed failed post-generation validation")
		for _, r := range report.Results {
			if !r.Satisfied {
				fmt.Fprintf(os.Stderr, "  [%s] %s\n", r.Name, r.Details)
			}
		}
	}

	baseName := seedBaseName(universe.Seed)
	for i, output := range seed.Worlds {
		path := filepath.Join(*outputDir, fmt.Sprintf("%s_world%d.json", baseName, i))
		if err := export.SaveOutputJSON(output, path); err != nil {
			return fmt.Errorf("failed to write world %d output: %w", i, err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	spoiler := export.NewSpoiler(seed, universe.Players)
	spoilerPath := filepath.Join(*outputDir, baseName+"_spoiler.json")
	if err := spoiler.SaveJSON(spoilerPath); err != nil {
		return fmt.Errorf("failed to write spoiler: %w", err)
	}

	fmt.Printf("Successfully generated seed %q in %v\n", universe.Seed, elapsed)
	return nil
}

func loadUniverseSettings(path string) (*settings.UniverseSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var u settings.UniverseSettings
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if u.WorldCount() == 0 {
		u.WorldSettings = []settings.WorldSettings{settings.DefaultWorldSettings()}
	}
	return &u, nil
}

func seedBaseName(seed string) string {
	if seed == "" {
		return "seed"
	}
	return "seed_" + seed
}

func printStats(seed *placement.Seed) {
	fmt.Println("\nSeed Statistics:")
	fmt.Printf("  Worlds: %d\n", len(seed.Worlds))
	fmt.Printf("  Placements: %d\n", len(seed.Spoiler))
	for i, output := range seed.Worlds {
		fmt.Printf("  World %d events: %d\n", i, len(output.Events))
	}
}

func printValidation(report *validation.Report) {
	fmt.Println("\nValidation:")
	for _, r := range report.Results {
		status := "PASS"
		if !r.Satisfied {
			status = "FAIL"
		}
		fmt.Printf("  [%s] %s: %s\n", status, r.Name, r.Details)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: seedgen -config <settings.yaml> [options]")
	fmt.Fprintln(os.Stderr, "Run 'seedgen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("seedgen version %s\n\n", version)
	fmt.Println("Generates an Ori and the Will of the Wisps randomizer seed.")
	fmt.Println("\nUsage:")
	fmt.Println("  seedgen -config <settings.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML universe settings file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -seed string")
	fmt.Println("        Override the seed string from config")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
}
