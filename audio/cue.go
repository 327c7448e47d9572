// Package audio synthesizes short cues for simulation events and plays them through the speaker
package audio

import "time"

// Cue identifies a sound effect
type Cue int

const (
	CueKill     Cue = iota // Enemy destroyed
	CueGameOver            // Player hit
	CueRestart             // New session
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueKill:
		return "kill"
	case CueGameOver:
		return "game_over"
	case CueRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Cue timing
const (
	KillDuration = 120 * time.Millisecond
	KillAttack   = 4 * time.Millisecond
	KillRelease  = 100 * time.Millisecond

	GameOverDuration = 700 * time.Millisecond
	GameOverAttack   = 10 * time.Millisecond
	GameOverRelease  = 400 * time.Millisecond

	RestartNoteDuration = 80 * time.Millisecond
	RestartAttack       = 5 * time.Millisecond
	RestartRelease      = 40 * time.Millisecond
)
