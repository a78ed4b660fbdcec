// Package export serializes a generated seed for downstream packaging: the
// per-world CompilerOutput event lists and the spoiler log recording how
// each placement was made.
//
// The placement core itself never writes to the filesystem; this package
// produces the JSON and also offers SaveJSON/SaveOutputJSON helpers that
// write it to a path.
package export
