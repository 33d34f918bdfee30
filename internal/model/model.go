// Package model builds the game's meshes from mesh primitives.
package model

import (
	"sort"

	"github.com/linuxmatters/templeforge/internal/mesh"
)

// Func builds one complete mesh.
type Func func() (*mesh.Builder, error)

// Registry maps manifest generator names to mesh builders.
var Registry = map[string]Func{
	"player":  Player,
	"pyramid": Pyramid,
	"cactus":  Cactus,
	"cube":    Cube,
	"tree":    Tree,
	"ground":  Ground,
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
