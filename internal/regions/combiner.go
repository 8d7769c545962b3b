// Package regions compresses per-tile collision geometry into a small set of
// larger rectangles. It runs once when a tilemap is baked, never per frame.
package regions

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critterbits/internal/core"
)

// Combiner merges adjacent, equally aligned rectangles.
type Combiner struct {
	logger *log.Logger
}

// NewCombiner creates a combiner that reports region counts to logger.
// A nil logger discards output.
func NewCombiner(logger *log.Logger) *Combiner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Combiner{logger: logger}
}

// Combine merges regions with the package's discard logger.
func Combine(regions []core.Rect) []core.Rect {
	return NewCombiner(nil).Combine(regions)
}

// Combine returns the minimal covering set for regions.
//
// Rectangles without area and rectangles contained in another one are
// dropped. Then pairs sharing y/h that touch horizontally, or sharing x/w that
// touch vertically, are merged until no pair qualifies. The input slice is
// reused as scratch space; callers should use the returned slice.
func (c *Combiner) Combine(regions []core.Rect) []core.Rect {
	c.logger.Info("combining regions", "count", len(regions))

	rs := removeContained(regions)
	passes := 0
	for {
		passes++
		var merged []core.Rect
		for i := range rs {
			if rs[i].Empty() {
				continue
			}
			for j := i + 1; j < len(rs); j++ {
				if rs[j].Empty() {
					continue
				}
				if m, ok := mergePair(rs[i], rs[j]); ok {
					merged = append(merged, m)
					// consumed regions are zeroed so the scan stays stable
					rs[i], rs[j] = core.Rect{}, core.Rect{}
					break
				}
			}
		}
		if len(merged) == 0 {
			break
		}
		rs = removeContained(append(rs, merged...))
	}

	c.logger.Info("combined regions", "count", len(rs), "passes", passes)
	return rs
}

// mergePair returns the union of a and b when they are aligned neighbours.
func mergePair(a, b core.Rect) (core.Rect, bool) {
	if a.Y == b.Y && a.H == b.H && (a.X == b.Right() || a.Right() == b.X) {
		return core.NewRect(core.Min(a.X, b.X), a.Y, a.W+b.W, a.H), true
	}
	if a.X == b.X && a.W == b.W && (a.Y == b.Bottom() || a.Bottom() == b.Y) {
		return core.NewRect(a.X, core.Min(a.Y, b.Y), a.W, a.H+b.H), true
	}
	return core.Rect{}, false
}

// removeContained filters out rectangles without area, duplicates (the first
// copy survives) and rectangles lying inside another rectangle.
func removeContained(rs []core.Rect) []core.Rect {
	keep := make([]bool, len(rs))
	for i, r := range rs {
		keep[i] = r.HasArea() && !coveredByOther(rs, i)
	}
	out := rs[:0]
	for i, r := range rs {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

func coveredByOther(rs []core.Rect, i int) bool {
	r := rs[i]
	for j, o := range rs {
		if j == i || !o.HasArea() || !r.Inside(o) {
			continue
		}
		if r != o || j < i {
			return true
		}
	}
	return false
}

// TotalArea sums w*h over regions.
func TotalArea(regions []core.Rect) int {
	total := 0
	for _, r := range regions {
		total += r.Area()
	}
	return total
}
