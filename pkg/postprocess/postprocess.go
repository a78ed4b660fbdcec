// Package postprocess runs the final textual substitution pass over a
// placed seed's generated lines: it resolves $WHEREIS(regex) and
// $HOWMANY(zone, regex) placeholders against the placement and the world
// graph (spec.md §4.9).
//
// Grounded on original_source/src/headers.rs's where_is/how_many/
// read_args/postprocess functions, ported line for line into the teacher's
// small-function, explicit-error-wrapping style.
package postprocess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/wotwseedgen/pkg/logic"
	"github.com/dshills/wotwseedgen/pkg/settings"
	"github.com/dshills/wotwseedgen/pkg/uberstate"
)

const (
	whereIsMarker = "$WHEREIS("
	howManyMarker = "$HOWMANY("
)

// Postprocess resolves every $WHEREIS and $HOWMANY placeholder in seeds,
// one world-text per world, and returns the rewritten texts. Cross-world
// lookups ($WHEREIS on a group-12 shared pickup, $HOWMANY's cross-world
// counterpart) always resolve against the pre-substitution text, matching
// the source's "clone the seeds before rewriting any of them" ordering.
func Postprocess(seeds []string, graph *logic.Graph, universe *settings.UniverseSettings) ([]string, error) {
	original := append([]string(nil), seeds...)
	result := append([]string(nil), seeds...)

	for worldIndex, seed := range result {
		seed, err := substitute(seed, whereIsMarker, func(pattern string) (string, error) {
			return whereIs(pattern, worldIndex, original, graph, universe)
		})
		if err != nil {
			return nil, err
		}

		seed, err = substitute(seed, howManyMarker, func(args string) (string, error) {
			return howManyMessage(args, worldIndex, original, graph)
		})
		if err != nil {
			return nil, err
		}

		result[worldIndex] = seed
	}

	return result, nil
}

// substitute repeatedly finds marker in seed, resolves the parenthesized
// argument text via resolve, and splices the result in place of the whole
// `marker...)` call, until no more occurrences remain.
func substitute(seed, marker string, resolve func(args string) (string, error)) (string, error) {
	lastIndex := 0
	for {
		rel := strings.Index(seed[lastIndex:], marker)
		if rel < 0 {
			break
		}
		startIndex := lastIndex + rel
		lastIndex = startIndex

		afterBracket := startIndex + len(marker)
		endIndex, ok := readArgs(seed, afterBracket)
		if !ok {
			break
		}

		args := strings.TrimSpace(seed[afterBracket:endIndex])
		replacement, err := resolve(args)
		if err != nil {
			return "", err
		}

		seed = seed[:startIndex] + replacement + seed[endIndex+1:]
	}
	return seed, nil
}

// readArgs scans seed starting at startIndex (the character right after a
// call's opening paren) for the matching close paren, respecting nested
// parentheses via a depth counter (spec.md §4.9, "$WHEREIS(f(x, y))").
// It returns the byte index of that close paren.
func readArgs(seed string, startIndex int) (int, bool) {
	depth := 1
	for i, r := range seed[startIndex:] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return startIndex + i, true
		}
	}
	return 0, false
}

// rawLine is one non-comment, non-metadata line of generated seed text,
// split into its raw (unparsed) uberState fields and pickup command text.
// The group/id fields are kept as strings because where_is only needs to
// compare them literally ("12", "3") for most lines and must not reject a
// free-text line that never turns out to match anything.
type rawLine struct {
	group, id, pickup string
}

// readRawLines walks seedText's lines, stripping trailing "//" comments and
// skipping blank lines plus the "Flags"/"Spawn" metadata lines (spec.md
// §4.9's skip convention, mirrored case-sensitively).
func readRawLines(seedText string) ([]rawLine, error) {
	var lines []rawLine
	for _, raw := range strings.Split(seedText, "\n") {
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Flags") || strings.HasPrefix(line, "Spawn") {
			continue
		}

		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("postprocess: failed to read line %q in seed", line)
		}
		lines = append(lines, rawLine{group: parts[0], id: parts[1], pickup: parts[2]})
	}
	return lines, nil
}

// parseIdentifier parses a line's raw group/id fields into a uberIdentifier.
func parseIdentifier(line rawLine) (uberstate.Identifier, error) {
	group, err := strconv.ParseInt(line.group, 10, 32)
	if err != nil {
		return uberstate.Identifier{}, fmt.Errorf("postprocess: invalid uberState group %q: %w", line.group, err)
	}
	id, err := strconv.ParseInt(line.id, 10, 32)
	if err != nil {
		return uberstate.Identifier{}, fmt.Errorf("postprocess: invalid uberState id %q: %w", line.id, err)
	}
	return uberstate.Identifier{Group: int32(group), Member: int32(id)}, nil
}

// nodeByUberIdentifier finds the first graph node addressing id, or nil.
func nodeByUberIdentifier(graph *logic.Graph, id uberstate.Identifier) *logic.Node {
	for i := range graph.Nodes {
		n := &graph.Nodes[i]
		if n.UberIdentifier != nil && *n.UberIdentifier == id {
			return n
		}
	}
	return nil
}

// whereIs resolves a single $WHEREIS(pattern) call for worldIndex against
// every world's seed text (spec.md §4.9). The group/id comparisons below
// are deliberately string comparisons, matching the source: only once a
// line's pickup has already matched pattern, and only once it falls through
// to the default branch, does the line's uberState actually need parsing.
func whereIs(pattern string, worldIndex int, seeds []string, graph *logic.Graph, universe *settings.UniverseSettings) (string, error) {
	re, err := regexp.Compile("^(" + pattern + ")$")
	if err != nil {
		return "", fmt.Errorf("postprocess: invalid regex %q: %w", pattern, err)
	}

	lines, err := readRawLines(seeds[worldIndex])
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		if !re.MatchString(line.pickup) {
			continue
		}

		switch {
		case line.group == "12": // multiworld shared
			actualPickup := fmt.Sprintf(`8\|12\|%s\|bool\|true`, line.id)
			for other := range seeds {
				if other == worldIndex {
					continue
				}
				actualZone, err := whereIs(actualPickup, other, seeds, graph, universe)
				if err != nil {
					return "", err
				}
				if actualZone != "Unknown" {
					return fmt.Sprintf("%s's %s", universe.PlayerName(other), actualZone), nil
				}
			}
		case line.group == "3" && (line.id == "0" || line.id == "1"):
			return "Spawn", nil
		default:
			id, err := parseIdentifier(line)
			if err != nil {
				return "", err
			}
			if node := nodeByUberIdentifier(graph, id); node != nil && node.Zone != "" {
				return node.Zone, nil
			}
		}
	}

	return "Unknown", nil
}

// howMany resolves the location list behind a $HOWMANY(zone, pattern) call:
// every uberIdentifier in zone whose own pickup command matches pattern, or
// whose group-12 shared counterpart does so in another world (spec.md
// §4.9).
func howMany(pattern, zone string, worldIndex int, seeds []string, graph *logic.Graph) ([]uberstate.Identifier, error) {
	re, err := regexp.Compile("^(" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("postprocess: invalid regex %q: %w", pattern, err)
	}

	lines, err := readRawLines(seeds[worldIndex])
	if err != nil {
		return nil, err
	}

	var locations []uberstate.Identifier
	for _, line := range lines {
		id, err := parseIdentifier(line)
		if err != nil {
			return nil, err
		}
		node := nodeByUberIdentifier(graph, id)
		if node == nil || node.Zone != zone {
			continue
		}

		if re.MatchString(line.pickup) {
			locations = append(locations, id)
			continue
		}

		pickupParts := strings.SplitN(line.pickup, "|", 4)
		if len(pickupParts) < 3 || pickupParts[0] != "8" || pickupParts[1] != "12" {
			continue
		}
		sharePrefix := fmt.Sprintf("12|%s|", pickupParts[2])

		if sharedMatchElsewhere(re, sharePrefix, worldIndex, seeds) {
			locations = append(locations, id)
		}
	}

	return locations, nil
}

// sharedMatchElsewhere scans every other world's raw seed text for a line
// beginning with sharePrefix whose remainder matches re.
func sharedMatchElsewhere(re *regexp.Regexp, sharePrefix string, worldIndex int, seeds []string) bool {
	for other, seedText := range seeds {
		if other == worldIndex {
			continue
		}
		for _, line := range strings.Split(seedText, "\n") {
			actual, ok := strings.CutPrefix(line, sharePrefix)
			if !ok {
				continue
			}
			if idx := strings.Index(actual, "//"); idx >= 0 {
				actual = actual[:idx]
			}
			actual = strings.TrimSpace(actual)
			if re.MatchString(actual) {
				return true
			}
		}
	}
	return false
}

// howManyMessage resolves a full $HOWMANY(zone, pattern) call into the
// system-message wire format $[15|4|group,member,...] (spec.md §4.9, §6).
func howManyMessage(args string, worldIndex int, seeds []string, graph *logic.Graph) (string, error) {
	zone, pattern, _ := strings.Cut(args, ",")
	zone = strings.TrimSpace(zone)
	pattern = strings.TrimSpace(pattern)

	locations, err := howMany(pattern, zone, worldIndex, seeds, graph)
	if err != nil {
		return "", err
	}

	triples := make([]string, len(locations))
	for i, id := range locations {
		triples[i] = fmt.Sprintf("%d,%d", id.Group, id.Member)
	}

	return fmt.Sprintf("$[15|4|%s]", strings.Join(triples, ",")), nil
}
