package audio

import (
	"io"
	"log/slog"
	"testing"
)

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if sm.Play(CueKill) {
		t.Error("played before Initialize")
	}
	// Observer hooks must not panic without a speaker
	sm.EnemyDestroyed(10, 20, 100)
	sm.PlayerHit(100)
	sm.Restarted("session")
	sm.Cleanup()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Muted() {
		t.Fatal("muted by default")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("toggle did not mute")
	}
	if sm.ToggleMute() {
		t.Error("second toggle did not unmute")
	}
}
