package scripts

import (
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/registry"
)

// Gate blocks the way until no entity tagged Requires is left in the world.
type Gate struct {
	Requires string
}

func init() {
	registry.Register("gate", "opens once every entity with a tag is gone", func(p registry.Params) engine.Script {
		return &Gate{Requires: p.String("requires", "coin")}
	})
}

func (g *Gate) Start(eng *engine.Engine, self *engine.Entity) error {
	return nil
}

func (g *Gate) Update(eng *engine.Engine, self *engine.Entity, dt float64) error {
	if len(eng.FindEntitiesByTag(g.Requires)) > 0 {
		return nil
	}
	self.MarkDestroy()
	eng.Logger().Info("gate opened", "gate", self, "requires", g.Requires)
	return nil
}

func (g *Gate) OnCollision(eng *engine.Engine, self, other *engine.Entity) error {
	return nil
}
