package flappy

import "fmt"

// EventKind tags what happened during a Step.
type EventKind int

const (
	EventAppStateChanged EventKind = iota
	EventSceneChanged
	EventScored
	EventBirdDied
	EventRoundFinished
)

// String returns a readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventAppStateChanged:
		return "app_state_changed"
	case EventSceneChanged:
		return "scene_changed"
	case EventScored:
		return "scored"
	case EventBirdDied:
		return "bird_died"
	case EventRoundFinished:
		return "round_finished"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for the platform (logging, persistence).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	PrevApp AppState // AppStateChanged
	App     AppState

	PrevScene Scene // SceneChanged
	Scene     Scene

	Bird int // BirdDied: 1 or 2

	Score     int       // Scored, RoundFinished
	TimeAlive float64   // RoundFinished
	Playstyle Playstyle // RoundFinished
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventAppStateChanged:
		return fmt.Sprintf("%s %s->%s", e.Kind, e.PrevApp, e.App)
	case EventSceneChanged:
		return fmt.Sprintf("%s %s->%s", e.Kind, e.PrevScene, e.Scene)
	case EventScored:
		return fmt.Sprintf("%s score=%d", e.Kind, e.Score)
	case EventBirdDied:
		return fmt.Sprintf("%s bird=%d", e.Kind, e.Bird)
	case EventRoundFinished:
		return fmt.Sprintf("%s %s score=%d alive=%.1fs", e.Kind, e.Playstyle, e.Score, e.TimeAlive)
	default:
		return e.Kind.String()
	}
}

// TickResult reports the machine state after a Step and what happened during it.
type TickResult struct {
	State  AppState
	Scene  Scene
	Events []Event
}

// Exit reports whether the game has reached its terminal state.
func (r TickResult) Exit() bool {
	return r.State == StateExit
}

func (r *TickResult) emit(e Event) {
	r.Events = append(r.Events, e)
}
