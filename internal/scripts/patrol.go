package scripts

import (
	"fmt"

	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/registry"
)

// Patrol walks back and forth along one axis, turning around when it has
// covered Distance or runs into something solid.
type Patrol struct {
	Axis     string // "x" or "y"
	Speed    float64
	Distance int

	origin core.Point
	dir    int
}

func init() {
	registry.Register("patrol", "walks back and forth along an axis", func(p registry.Params) engine.Script {
		return &Patrol{
			Axis:     p.String("axis", "x"),
			Speed:    p.Float("speed", 30),
			Distance: p.Int("distance", 64),
		}
	})
}

func (p *Patrol) Start(eng *engine.Engine, self *engine.Entity) error {
	if p.Axis != "x" && p.Axis != "y" {
		return fmt.Errorf("patrol: axis must be x or y, got %q", p.Axis)
	}
	p.origin = self.Dim.XY()
	p.dir = 1
	return nil
}

func (p *Patrol) Update(eng *engine.Engine, self *engine.Entity, dt float64) error {
	if p.dir == 0 {
		return nil
	}
	step := p.Speed * dt * float64(p.dir)

	var travelled int
	var blocked bool
	if p.Axis == "x" {
		eng.MoveBy(self, step, 0)
		travelled = self.Dim.X - p.origin.X
		blocked, _ = self.Blocked()
	} else {
		eng.MoveBy(self, 0, step)
		travelled = self.Dim.Y - p.origin.Y
		_, blocked = self.Blocked()
	}

	switch {
	case blocked:
		p.dir = -p.dir
	case p.dir > 0 && travelled >= p.Distance:
		p.dir = -1
	case p.dir < 0 && travelled <= 0:
		p.dir = 1
	}
	return nil
}

func (p *Patrol) OnCollision(eng *engine.Engine, self, other *engine.Entity) error {
	return nil
}

// Direction returns +1 or -1 depending on where the patrol is heading.
func (p *Patrol) Direction() int {
	return p.dir
}
