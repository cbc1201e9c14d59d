package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"gitartist/internal/domain"
)

// nonceLength is the length of the random marker written into each commit
const nonceLength = 12

// DensityTranslator turns dated plan entries into individual commit operations
type DensityTranslator struct {
	intN  func(n int) int
	nonce func() string
}

// TranslatorOption configures a DensityTranslator
type TranslatorOption func(*DensityTranslator)

// WithIntN replaces the random source used to pick commit counts.
// fn must return a value in [0, n).
func WithIntN(fn func(n int) int) TranslatorOption {
	return func(t *DensityTranslator) { t.intN = fn }
}

// WithNonce replaces the nonce generator
func WithNonce(fn func() string) TranslatorOption {
	return func(t *DensityTranslator) { t.nonce = fn }
}

// NewDensityTranslator creates a translator backed by math/rand/v2 and nanoid
func NewDensityTranslator(opts ...TranslatorOption) *DensityTranslator {
	t := &DensityTranslator{
		intN:  rand.IntN,
		nonce: newNonce,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func newNonce() string {
	id, err := gonanoid.New(nonceLength)
	if err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return id
}

// Count draws a commit count uniformly from the density's range
func (t *DensityTranslator) Count(d domain.Density) int {
	r := domain.RangeFor(d)
	return r.Min + t.intN(r.Max-r.Min+1)
}

// Expand returns the commits for one plan entry, numbered from 1
func (t *DensityTranslator) Expand(entry domain.PlanEntry) []domain.CommitOp {
	n := t.Count(entry.Density)
	ops := make([]domain.CommitOp, n)
	for i := range ops {
		ops[i] = domain.CommitOp{
			Date:     entry.Date,
			Nonce:    t.nonce(),
			Sequence: i + 1,
		}
	}
	return ops
}

// ExpandPlan expands every entry, keeping plan order
func (t *DensityTranslator) ExpandPlan(plan []domain.PlanEntry) []domain.CommitOp {
	var ops []domain.CommitOp
	for _, entry := range plan {
		ops = append(ops, t.Expand(entry)...)
	}
	return ops
}
