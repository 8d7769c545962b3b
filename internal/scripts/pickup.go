package scripts

import (
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/registry"
)

// Pickup disappears when an entity carrying CollectorTag touches it and
// credits Value to that entity's script if it is a Collector.
type Pickup struct {
	Value        int
	CollectorTag string
}

func init() {
	registry.Register("pickup", "vanishes when the player touches it", func(p registry.Params) engine.Script {
		return &Pickup{
			Value:        p.Int("value", 1),
			CollectorTag: p.String("collector", "player"),
		}
	})
}

func (p *Pickup) Start(eng *engine.Engine, self *engine.Entity) error {
	return nil
}

func (p *Pickup) Update(eng *engine.Engine, self *engine.Entity, dt float64) error {
	return nil
}

func (p *Pickup) OnCollision(eng *engine.Engine, self, other *engine.Entity) error {
	if self.Destroyed() || other.Tag != p.CollectorTag {
		return nil
	}
	if c, ok := other.Script.(Collector); ok {
		c.Collect(p.Value)
	}
	self.MarkDestroy()
	eng.Logger().Debug("picked up", "pickup", self, "by", other)
	return nil
}
