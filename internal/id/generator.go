// Package id mints palette identifiers.
package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Palettes are usually added one at a time by hand, so a coarse tick
	// with a few random characters keeps IDs short while staying unique
	// across a bulk import.
	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(10 * time.Millisecond).
		WithNumRandomChars(3)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique palette ID.
func Generate() string {
	return generator.MustGenerate()
}

// GenerateN returns n distinct palette IDs.
func GenerateN(n int) []string {
	seen := make(map[string]bool, n)
	ids := make([]string, 0, n)
	for len(ids) < n {
		next := Generate()
		if seen[next] {
			continue
		}
		seen[next] = true
		ids = append(ids, next)
	}
	return ids
}
