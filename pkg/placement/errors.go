package placement

import "errors"

// errNoProgressionCandidate is returned when choose_progression finds no
// world with a viable progression candidate. The original source's
// choose_progression ends in a bare todo!() comment "TODO flush item pool"
// for this case; this core instead surfaces it as an ordinary retriable
// failure, causing the outer attempt loop to reseed and try again (DESIGN.md
// Open Question decision #1).
var errNoProgressionCandidate = errors.New("placement: no world has a viable progression candidate")

// errNoSpawnLocation is returned by chooseSpawn when no node satisfies the
// requested Spawn setting.
var errNoSpawnLocation = errors.New("placement: no valid spawn location available")
