package starfall

import "github.com/starfall-arcade/starfall/internal/core"

// Body is the movable base shared by every entity: a position, a velocity
// and a circular size used for hit-testing. Rendered shapes vary, but all
// collision is circle-vs-circle on Size.
type Body struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
}

// Overlaps reports whether two bodies collide: the center distance is
// strictly below the sum of the two half-sizes.
func (b Body) Overlaps(other Body) bool {
	return core.Dist(b.Pos, other.Pos) < (b.Size+other.Size)/2
}

// Owner tags who fired a bullet.
type Owner string

// OwnerPlayer is the only shooter today.
const OwnerPlayer Owner = "player"

// EnemyKind discriminates enemy variants.
type EnemyKind string

// EnemyBasic is the single enemy variant: drifts straight down.
const EnemyBasic EnemyKind = "basic"

// Player is the ship. One instance per session, never destroyed,
// clamped to the playfield. Hit points live on the session, not here.
type Player struct {
	Body
}

// Bullet is a player projectile with fixed upward velocity and a safety
// time-to-live so stray bullets cannot accumulate.
type Bullet struct {
	Body
	Owner Owner
	TTLMs float64
}

// Enemy descends from the top edge until it leaves the field or collides.
type Enemy struct {
	Body
	Kind EnemyKind
}

// Star is a decorative background particle. Stars are never destroyed;
// once past the bottom edge they wrap back to the top with a fresh
// horizontal position and fall speed.
type Star struct {
	Body
	Brightness float64 // 0..1, drives the rendered glyph
}
