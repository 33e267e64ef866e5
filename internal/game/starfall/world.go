package starfall

import (
	"math/rand"

	"github.com/starfall-arcade/starfall/internal/config"
	"github.com/starfall-arcade/starfall/internal/core"
)

// Logical playfield dimensions. The simulation never leaves this space;
// the platform maps it onto whatever terminal size is available.
const (
	FieldW = 320.0
	FieldH = 568.0
)

// Star recycling margins: a star past bottom+StarWrapMargin reappears at
// -StarWrapMargin in the same tick.
const StarWrapMargin = 5.0

// Phase is the session-level state.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameOver"
)

// World holds all simulation objects and session scalars. It has no
// behavior beyond storage and reset; the Game drives all transitions.
type World struct {
	Player  Player
	Bullets []Bullet
	Enemies []Enemy
	Stars   []Star

	Score int
	HP    int
	Phase Phase
}

// Reset reinitializes the session: the player at the canonical start
// position with zero velocity, no bullets or enemies, a freshly
// randomized star field of the configured size, score zeroed, full hit
// points and the playing phase.
func (w *World) Reset(cfg config.StarfallConfig, rng *rand.Rand) {
	w.Player = Player{Body: Body{
		Pos:  core.V(FieldW/2, FieldH-80),
		Size: cfg.Player.Size,
	}}

	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]

	w.Stars = make([]Star, cfg.Stars.Count)
	for i := range w.Stars {
		w.Stars[i] = Star{
			Body: Body{
				Pos:  core.V(rng.Float64()*FieldW, rng.Float64()*FieldH),
				Vel:  core.V(0, starSpeed(cfg, rng)),
				Size: 2,
			},
			Brightness: 0.3 + 0.7*rng.Float64(),
		}
	}

	w.Score = 0
	w.HP = cfg.Session.HitPoints
	w.Phase = PhasePlaying
}

// starSpeed draws a downward drift speed within the configured band.
func starSpeed(cfg config.StarfallConfig, rng *rand.Rand) float64 {
	return cfg.Stars.MinSpeed + rng.Float64()*(cfg.Stars.MaxSpeed-cfg.Stars.MinSpeed)
}
