// Package data carries the static seed catalog loaded at first run.
package data

import _ "embed"

// EncouragementsJSON is the fixed encouragement message bank, loaded once to
// seed the encouragements table. Rows are never added or removed post-seed.
//
//go:embed encouragements.json
var EncouragementsJSON []byte
