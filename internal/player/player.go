package player

// Player keeps the score and remaining lives across one round
type Player struct {
	points int
	lives  int
}

// New creates a Player with the given number of lives and no points
func New(lives int) *Player {
	return &Player{
		lives: lives,
	}
}

// UpdatePoints adds delta to the score. A total that would drop below zero is reset to zero.
func (p *Player) UpdatePoints(delta int) {
	if p.points+delta < 0 {
		p.points = 0
		return
	}
	p.points += delta
}

// ReduceLives takes away one life
func (p *Player) ReduceLives() {
	p.lives--
}

// IsAlive reports whether the player has lives left
func (p *Player) IsAlive() bool {
	return p.lives > 0
}

// Points returns the current score
func (p *Player) Points() int {
	return p.points
}

// Lives returns the remaining lives
func (p *Player) Lives() int {
	return p.lives
}

// Record applies the outcome of one guess: a negative score also costs a life
func (p *Player) Record(points int) {
	if points < 0 {
		p.ReduceLives()
	}
	p.UpdatePoints(points)
}
