// Package starfall implements a vertical-scrolling space shooter.
// The player's ship dodges and destroys descending enemies on a fixed
// 320x568 logical playfield until its hit points run out.
package starfall

import (
	"math"
	"math/rand"
	"time"

	"github.com/starfall-arcade/starfall/internal/config"
	"github.com/starfall-arcade/starfall/internal/core"
	"github.com/starfall-arcade/starfall/internal/registry"
)

// Ticks longer than this are treated as a hiccup and capped so cooldowns
// and TTLs don't jump after a suspended terminal.
const maxTickMs = 250.0

// Package-level settings applied before game creation (CLI wiring).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom YAML config path for the next New().
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next New().
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the starfall shooter logic. It owns the world store and
// advances it one tick at a time; rendering is a pure read.
type Game struct {
	cfg   config.StarfallConfig
	rt    core.RuntimeConfig
	world World
	rng   *rand.Rand

	paused     bool
	tick       uint64
	clockMs    float64 // Wall-clock since reset, fed by dt
	lastFireMs float64 // clockMs of the most recent shot
}

// New creates a game instance using the configured YAML and difficulty
// preset.
func New() *Game {
	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}
	config.ApplyStarfallPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game instance with explicit tuning.
func NewWithConfig(cfg config.StarfallConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// FieldSize returns the logical playfield dimensions, enabling pointer
// input on the platform side.
func (g *Game) FieldSize() (w, h float64) {
	return FieldW, FieldH
}

// Config returns the active tuning. Read-only for observers.
func (g *Game) Config() config.StarfallConfig {
	return g.cfg
}

// Reset initializes or restarts the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world.Reset(g.cfg, g.rng)
	g.paused = false
	g.tick = 0
	g.clockMs = 0
	g.lastFireMs = 0
}

// Step advances the simulation by one tick. The sub-phase order is
// significant: firing sees the post-intent velocity, collisions see
// integrated positions, and eviction sees collision results.
func (g *Game) Step(in core.Intent, dt time.Duration) core.StepResult {
	if in.Pause && g.world.Phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dtMs := core.ClampF(dt.Seconds()*1000, 0, maxTickMs)
	g.clockMs += dtMs

	if g.world.Phase != PhasePlaying {
		// Terminal state: only passive star drift continues.
		g.moveStars()
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.resolveIntent(in)
	g.fire(in)
	g.spawnEnemies()
	g.integrate(dtMs)
	g.clampPlayer()
	g.resolveCollisions()
	g.evict()

	return core.StepResult{State: g.State()}
}

// resolveIntent computes the player's target velocity from the input
// snapshot and smooths the actual velocity toward it.
func (g *Game) resolveIntent(in core.Intent) {
	p := &g.world.Player
	maxSpeed := g.cfg.Player.MaxSpeed

	dx, dy := in.Axis()
	target := core.V(dx*maxSpeed, dy*maxSpeed)

	if in.PointerActive {
		// Out-of-range pointer coordinates are tolerated by clamping
		// into the field rather than rejected.
		ptr := core.V(
			core.ClampF(in.Pointer.X, 0, FieldW),
			core.ClampF(in.Pointer.Y, 0, FieldH),
		)
		offset := ptr.Sub(p.Pos)
		dist := offset.Len()

		if dist > g.cfg.Pointer.DeadZone {
			ramp := math.Min(1, dist/g.cfg.Pointer.RampDistance)
			target = offset.Scale(g.cfg.Pointer.Gain * ramp)
			if l := target.Len(); l > maxSpeed {
				// Cap to max speed, preserving direction.
				target = target.Scale(maxSpeed / l)
			}
		} else {
			target = core.Vec2{}
		}
	}

	p.Vel = core.LerpVec(p.Vel, target, g.cfg.Player.Smoothing)
}

// fire spawns one bullet if the fire intent is active and the wall-clock
// cooldown has elapsed. The fire clock starts at reset, so the first shot
// lands one cooldown after the session begins.
func (g *Game) fire(in core.Intent) {
	if !in.Fire {
		return
	}
	if g.clockMs-g.lastFireMs < g.cfg.Weapon.CooldownMs {
		return
	}

	g.world.Bullets = append(g.world.Bullets, Bullet{
		Body: Body{
			Pos:  g.world.Player.Pos,
			Vel:  core.V(0, -g.cfg.Weapon.BulletSpeed),
			Size: g.cfg.Weapon.BulletSize,
		},
		Owner: OwnerPlayer,
		TTLMs: g.cfg.Weapon.BulletTTLMs,
	})
	g.lastFireMs = g.clockMs
}

// spawnEnemies rolls the per-tick spawn chance once and, on success,
// places one enemy just above the top edge at a random x clamped so the
// whole body starts inside the horizontal bounds.
func (g *Game) spawnEnemies() {
	if g.rng.Float64() >= g.cfg.Enemies.SpawnChance {
		return
	}

	size := g.cfg.Enemies.Size
	half := size / 2
	x := half + g.rng.Float64()*(FieldW-size)

	g.world.Enemies = append(g.world.Enemies, Enemy{
		Body: Body{
			Pos:  core.V(x, -half),
			Vel:  core.V(0, g.cfg.Enemies.Speed),
			Size: size,
		},
		Kind: EnemyBasic,
	})
}

// integrate adds velocity to position for every movable and decays bullet
// lifetimes. Motion is per-tick, not dt-scaled; dt only feeds the TTLs.
func (g *Game) integrate(dtMs float64) {
	w := &g.world

	w.Player.Pos = w.Player.Pos.Add(w.Player.Vel)

	for i := range w.Bullets {
		w.Bullets[i].Pos = w.Bullets[i].Pos.Add(w.Bullets[i].Vel)
		w.Bullets[i].TTLMs -= dtMs
	}
	for i := range w.Enemies {
		w.Enemies[i].Pos = w.Enemies[i].Pos.Add(w.Enemies[i].Vel)
	}

	g.moveStars()
}

// moveStars advances the star field and recycles stars that crossed the
// bottom edge back to the top with fresh randomness, in the same tick.
func (g *Game) moveStars() {
	for i := range g.world.Stars {
		s := &g.world.Stars[i]
		s.Pos = s.Pos.Add(s.Vel)
		if s.Pos.Y > FieldH+StarWrapMargin {
			s.Pos.Y = -StarWrapMargin
			s.Pos.X = g.rng.Float64() * FieldW
			s.Vel.Y = starSpeed(g.cfg, g.rng)
		}
	}
}

// clampPlayer keeps the ship fully inside the playfield given its half-size.
func (g *Game) clampPlayer() {
	p := &g.world.Player
	half := p.Size / 2
	p.Pos.X = core.ClampF(p.Pos.X, half, FieldW-half)
	p.Pos.Y = core.ClampF(p.Pos.Y, half, FieldH-half)
}

// resolveCollisions handles player-enemy and bullet-enemy overlaps.
func (g *Game) resolveCollisions() {
	w := &g.world

	// Player vs enemies: each overlap destroys the enemy and costs one
	// hit point; at zero the session transitions to game over.
	for i := 0; i < len(w.Enemies); {
		if w.Player.Overlaps(w.Enemies[i].Body) {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			w.HP--
			if w.HP <= 0 {
				w.HP = 0
				w.Phase = PhaseGameOver
			}
			continue
		}
		i++
	}

	// Bullets vs enemies: the first overlap destroys both and scores.
	// A bullet stops scanning once it has hit, so it scores at most once
	// per tick.
	for bi := 0; bi < len(w.Bullets); {
		hit := false
		for ei := range w.Enemies {
			if w.Bullets[bi].Overlaps(w.Enemies[ei].Body) {
				w.Enemies = append(w.Enemies[:ei], w.Enemies[ei+1:]...)
				w.Bullets = append(w.Bullets[:bi], w.Bullets[bi+1:]...)
				w.Score += g.cfg.Session.ScorePerKill
				hit = true
				break
			}
		}
		if !hit {
			bi++
		}
	}
}

// evict removes bullets and enemies that left the playfield by more than
// their own size, and bullets whose time-to-live expired.
func (g *Game) evict() {
	w := &g.world

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.TTLMs > 0 && !outOfField(b.Body) {
			bullets = append(bullets, b)
		}
	}
	w.Bullets = bullets

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !outOfField(e.Body) {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies
}

// outOfField reports whether a body's position exceeds the playfield
// bounds by more than its size, the eviction margin.
func outOfField(b Body) bool {
	return b.Pos.X < -b.Size || b.Pos.X > FieldW+b.Size ||
		b.Pos.Y < -b.Size || b.Pos.Y > FieldH+b.Size
}

// State returns the current session state for observers.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		Lives:    g.world.HP,
		GameOver: g.world.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
}
