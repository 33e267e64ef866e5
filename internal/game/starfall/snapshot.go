package starfall

// Snapshot captures the observable simulation state for determinism
// testing and debugging.
type Snapshot struct {
	Tick    uint64
	Score   int
	HP      int
	Phase   Phase
	PlayerX float64
	PlayerY float64
	Bullets int
	Enemies int
	Stars   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Score:   g.world.Score,
		HP:      g.world.HP,
		Phase:   g.world.Phase,
		PlayerX: g.world.Player.Pos.X,
		PlayerY: g.world.Player.Pos.Y,
		Bullets: len(g.world.Bullets),
		Enemies: len(g.world.Enemies),
		Stars:   len(g.world.Stars),
	}
}
