// Package reference generates human-readable voucher reference numbers.
package reference

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	prefix    = "RS"
	suffixMin = 1000
	suffixMax = 9999
)

// Generator produces voucher references in the format RS-YY/YY-NNNN, where
// the two year fields are the current and next financial year and NNNN is a
// random 4-digit suffix. Uniqueness is best effort: Tally may return its own
// authoritative voucher number that supersedes this one.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the current time.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a generator with an explicit randomness
// source so tests can be deterministic.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a fresh reference for the given date. Every call draws a
// new suffix; nothing is cached.
func (g *Generator) Generate(now time.Time) string {
	year := now.Year() % 100
	nextYear := (now.Year() + 1) % 100
	number := suffixMin + g.rng.Intn(suffixMax-suffixMin+1)
	return fmt.Sprintf("%s-%02d/%02d-%d", prefix, year, nextYear, number)
}
