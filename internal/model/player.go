package model

import (
	"fmt"

	"github.com/linuxmatters/templeforge/internal/mesh"
)

type part struct {
	name   string
	center mesh.Vec3
	size   mesh.Vec3
}

// Adventurer body plan, feet up. Paired parts list the left side first.
var adventurer = []part{
	{"left boot", mesh.Vec3{X: -0.3, Y: 0.15}, mesh.Vec3{X: 0.25, Y: 0.3, Z: 0.3}},
	{"right boot", mesh.Vec3{X: 0.3, Y: 0.15}, mesh.Vec3{X: 0.25, Y: 0.3, Z: 0.3}},
	{"left leg", mesh.Vec3{X: -0.3, Y: 0.6}, mesh.Vec3{X: 0.22, Y: 0.6, Z: 0.22}},
	{"right leg", mesh.Vec3{X: 0.3, Y: 0.6}, mesh.Vec3{X: 0.22, Y: 0.6, Z: 0.22}},

	{"belt", mesh.Vec3{Y: 1.0}, mesh.Vec3{X: 0.7, Y: 0.15, Z: 0.35}},
	{"torso", mesh.Vec3{Y: 1.4}, mesh.Vec3{X: 0.65, Y: 0.7, Z: 0.3}},
	{"chest plate", mesh.Vec3{Y: 1.5, Z: 0.16}, mesh.Vec3{X: 0.5, Y: 0.5, Z: 0.08}},

	{"left shoulder", mesh.Vec3{X: -0.45, Y: 1.75}, mesh.Vec3{X: 0.3, Y: 0.25, Z: 0.3}},
	{"right shoulder", mesh.Vec3{X: 0.45, Y: 1.75}, mesh.Vec3{X: 0.3, Y: 0.25, Z: 0.3}},
	{"left upper arm", mesh.Vec3{X: -0.45, Y: 1.35}, mesh.Vec3{X: 0.18, Y: 0.5, Z: 0.18}},
	{"right upper arm", mesh.Vec3{X: 0.45, Y: 1.35}, mesh.Vec3{X: 0.18, Y: 0.5, Z: 0.18}},
	{"left forearm", mesh.Vec3{X: -0.45, Y: 0.85, Z: 0.1}, mesh.Vec3{X: 0.16, Y: 0.4, Z: 0.16}},
	{"right forearm", mesh.Vec3{X: 0.45, Y: 0.85, Z: 0.1}, mesh.Vec3{X: 0.16, Y: 0.4, Z: 0.16}},
	{"left hand", mesh.Vec3{X: -0.45, Y: 0.6, Z: 0.15}, mesh.Vec3{X: 0.14, Y: 0.2, Z: 0.14}},
	{"right hand", mesh.Vec3{X: 0.45, Y: 0.6, Z: 0.15}, mesh.Vec3{X: 0.14, Y: 0.2, Z: 0.14}},

	{"neck", mesh.Vec3{Y: 1.85}, mesh.Vec3{X: 0.18, Y: 0.15, Z: 0.18}},
	{"head", mesh.Vec3{Y: 2.1}, mesh.Vec3{X: 0.35, Y: 0.4, Z: 0.35}},
	{"nose", mesh.Vec3{Y: 2.1, Z: 0.2}, mesh.Vec3{X: 0.08, Y: 0.12, Z: 0.08}},
	{"hat brim", mesh.Vec3{Y: 2.4}, mesh.Vec3{X: 0.7, Y: 0.08, Z: 0.7}},
	{"hat crown", mesh.Vec3{Y: 2.6}, mesh.Vec3{X: 0.4, Y: 0.3, Z: 0.4}},

	{"backpack", mesh.Vec3{Y: 1.4, Z: -0.25}, mesh.Vec3{X: 0.45, Y: 0.6, Z: 0.25}},
	{"bedroll", mesh.Vec3{Y: 1.9, Z: -0.25}, mesh.Vec3{X: 0.15, Y: 0.15, Z: 0.4}},
	{"water bottle", mesh.Vec3{X: 0.4, Y: 1.0, Z: 0.2}, mesh.Vec3{X: 0.12, Y: 0.25, Z: 0.12}},
	{"pouch", mesh.Vec3{X: -0.35, Y: 0.95, Z: 0.15}, mesh.Vec3{X: 0.15, Y: 0.15, Z: 0.15}},
}

// Player is the adventurer figure, one box per body part.
func Player() (*mesh.Builder, error) {
	b := mesh.NewBuilder("Adventurer", "Boxes from boots to hat, then backpack and belt kit")

	for _, p := range adventurer {
		if _, err := mesh.Box(b, p.center, p.size); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.name, err)
		}
	}

	return b, nil
}
