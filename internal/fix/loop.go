package fix

import (
	"context"
	"crypto/sha256"
	"errors"
)

var (
	// ErrNoChanges is returned by Loop when the first pass commits nothing.
	ErrNoChanges = errors.New("no applicable fixes found")
	// ErrDidNotConverge is returned when passes keep changing the content
	// until the pass limit, or revisit content seen before.
	ErrDidNotConverge = errors.New("fixer did not converge")
)

// DefaultMaxPasses bounds Loop when the caller passes zero.
const DefaultMaxPasses = 50

// Pass re-tokenizes content, runs the sniffs with fixing enabled and returns
// the Fixer holding their committed edits. pass counts from 1.
type Pass func(ctx context.Context, content []byte, pass int) (*Fixer, error)

// Result describes a finished Loop.
type Result struct {
	Content   []byte
	Passes    int
	Fixes     int // committed changesets over all passes
	Rejected  int
	Converged bool
}

// Changed reports whether the content differs from the input.
func (r Result) Changed() bool { return r.Fixes > 0 }

// Loop runs passes until one commits nothing. Result.Content always holds
// the last content produced, also when an error is returned.
func Loop(ctx context.Context, content []byte, maxPasses int, pass Pass) (Result, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	res := Result{Content: content}
	seen := map[[32]byte]struct{}{sha256.Sum256(content): {}}

	for p := 1; p <= maxPasses; p++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f, err := pass(ctx, res.Content, p)
		if err != nil {
			return res, err
		}
		res.Passes = p
		res.Rejected += len(f.Rejections())
		if f.Commits() == 0 {
			res.Converged = true
			if res.Fixes == 0 {
				return res, ErrNoChanges
			}
			return res, nil
		}
		res.Fixes += f.Commits()
		next := []byte(f.Content())
		sum := sha256.Sum256(next)
		res.Content = next
		if _, loop := seen[sum]; loop {
			return res, ErrDidNotConverge
		}
		seen[sum] = struct{}{}
	}
	return res, ErrDidNotConverge
}
