package world

import "github.com/vovakirdan/tui-dino/internal/core"

// missingSize is the body size given to entities whose asset is unknown.
const missingSize = 32

// Asset describes how an asset identifier looks and how big it is in world units.
type Asset struct {
	Width  float64
	Height float64

	// Frames holds one piece of character art per animation frame.
	// Art is stretched to the entity bounds when drawn; spaces are transparent.
	Frames [][]string

	Color core.Color

	// Tiled assets repeat their art horizontally instead of stretching it.
	Tiled bool
}

// Catalog maps asset identifiers to their description.
type Catalog map[string]Asset

// lookup returns the asset, falling back to an invisible square.
func (c Catalog) lookup(name string) Asset {
	if a, ok := c[name]; ok {
		return a
	}
	return Asset{Width: missingSize, Height: missingSize}
}

// frame returns the art for the given frame index, wrapping around.
func (a Asset) frame(i int) []string {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[i%len(a.Frames)]
}
