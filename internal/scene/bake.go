package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/regions"
)

// RegionCache stores baked regions between runs.
type RegionCache interface {
	LoadRegions(sceneID, tileHash string) ([]core.Rect, bool, error)
	SaveRegions(sceneID, tileHash string, tileCount int, regions []core.Rect) error
}

// BakeResult reports how a scene's collision regions were produced.
type BakeResult struct {
	Regions []core.Rect
	Tiles   int
	Cached  bool
}

// Baker turns tile grids into combined collision regions.
type Baker struct {
	cache    RegionCache
	combiner *regions.Combiner
	logger   *log.Logger
}

// NewBaker creates a baker. cache may be nil to always combine from scratch.
func NewBaker(cache RegionCache, logger *log.Logger) *Baker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Baker{
		cache:    cache,
		combiner: regions.NewCombiner(logger),
		logger:   logger,
	}
}

// Bake returns the combined regions of s, from the cache when the tile grid
// is unchanged. Fresh results are written back to the cache.
func (b *Baker) Bake(s *Scene) (BakeResult, error) {
	tiles := s.SolidTiles()
	hash := s.TileHash()

	if b.cache != nil {
		cached, ok, err := b.cache.LoadRegions(s.ID, hash)
		if err != nil {
			return BakeResult{}, fmt.Errorf("scene: cannot read region cache: %w", err)
		}
		if ok {
			b.logger.Debug("region cache hit", "scene", s.ID, "regions", len(cached))
			return BakeResult{Regions: cached, Tiles: len(tiles), Cached: true}, nil
		}
		b.logger.Debug("region cache miss", "scene", s.ID)
	}

	combined := b.combiner.Combine(tiles)

	if b.cache != nil {
		if err := b.cache.SaveRegions(s.ID, hash, len(tiles), combined); err != nil {
			return BakeResult{}, fmt.Errorf("scene: cannot write region cache: %w", err)
		}
	}
	return BakeResult{Regions: combined, Tiles: len(tiles)}, nil
}
