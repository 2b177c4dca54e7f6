package flappy

import (
	"fmt"

	"github.com/vovakirdan/bat-adventure/internal/config"
)

// Playstyle decides whether the second bird takes part in a round.
type Playstyle int

const (
	Singleplayer Playstyle = iota
	Multiplayer
)

// String returns the name used on the command line and in storage.
func (p Playstyle) String() string {
	switch p {
	case Singleplayer:
		return "single"
	case Multiplayer:
		return "multi"
	default:
		return "unknown"
	}
}

// ParsePlaystyle converts "single" or "multi" into a Playstyle.
func ParsePlaystyle(s string) (Playstyle, error) {
	switch s {
	case "single", "singleplayer", "1":
		return Singleplayer, nil
	case "multi", "multiplayer", "2":
		return Multiplayer, nil
	default:
		return Singleplayer, fmt.Errorf("unknown playstyle %q (valid: single, multi)", s)
	}
}

// RoundState is everything that changes during one round.
type RoundState struct {
	Bird1     Bird
	Bird2     Bird
	Obstacle  Obstacle
	Parallax  Parallax
	Score     int
	TimeAlive float64 // Seconds spent in the Playing scene
}

// newRound builds the state a round starts (and restarts) from.
func newRound(cfg config.Config) RoundState {
	bird1, bird2 := spawnBirds(cfg.World)
	return RoundState{
		Bird1:    bird1,
		Bird2:    bird2,
		Obstacle: NewObstacle(cfg.Obstacle, cfg.World),
		Parallax: NewParallax(cfg.Parallax),
	}
}

// participants returns pointers to the birds taking part under the playstyle.
func (r *RoundState) participants(p Playstyle) []*Bird {
	if p == Multiplayer {
		return []*Bird{&r.Bird1, &r.Bird2}
	}
	return []*Bird{&r.Bird1}
}

// Lost reports whether the round is over: the only bird in singleplayer,
// or both birds in multiplayer, are dead.
func (r RoundState) Lost(p Playstyle) bool {
	if p == Multiplayer {
		return !r.Bird1.Alive && !r.Bird2.Alive
	}
	return !r.Bird1.Alive
}

// scoringX returns the x coordinate an obstacle must pass to award a point.
func (r *RoundState) scoringX(p Playstyle, ref config.ScoringReference) float64 {
	switch ref {
	case config.ScoreByBird1:
		return r.Bird1.Position.X
	case config.ScoreByLeading:
		x, found := 0.0, false
		for _, b := range r.participants(p) {
			if b.Alive && (!found || b.Position.X > x) {
				x, found = b.Position.X, true
			}
		}
		if found {
			return x
		}
		return r.Bird1.Position.X
	default:
		if p == Multiplayer {
			return r.Bird2.Position.X
		}
		return r.Bird1.Position.X
	}
}
