// Package scripts contains the built-in entity behaviours. Each script
// registers itself with the registry so scene files can refer to it by name.
package scripts

import (
	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/registry"
)

// Collector is implemented by scripts that can pick things up.
type Collector interface {
	Collect(value int)
}

// Player moves its entity with the directional input actions.
type Player struct {
	Speed float64 // world units per second

	Score int
	Bumps int
}

func init() {
	registry.Register("player", "moves with the arrow keys and collects pickups", func(p registry.Params) engine.Script {
		return &Player{Speed: p.Float("speed", 60)}
	})
}

func (p *Player) Start(eng *engine.Engine, self *engine.Entity) error {
	p.Score = 0
	p.Bumps = 0
	return nil
}

func (p *Player) Update(eng *engine.Engine, self *engine.Entity, dt float64) error {
	axis := eng.Input.Axis()
	if axis.X == 0 && axis.Y == 0 {
		return nil
	}
	step := p.Speed * dt
	eng.MoveBy(self, float64(axis.X)*step, float64(axis.Y)*step)
	return nil
}

func (p *Player) OnCollision(eng *engine.Engine, self, other *engine.Entity) error {
	if other.Kind == collision.KindCollide {
		p.Bumps++
	}
	return nil
}

// Collect adds value to the score.
func (p *Player) Collect(value int) {
	p.Score += value
}
