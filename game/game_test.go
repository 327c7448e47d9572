package game_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kako-jun/yatagarrage/config"
	"github.com/kako-jun/yatagarrage/game"
	"github.com/kako-jun/yatagarrage/game/mocks"
	"github.com/kako-jun/yatagarrage/parameter"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newGame(t *testing.T, mode string, opts ...game.Option) *game.Game {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Mode = mode
	g, err := game.New(cfg, append([]game.Option{game.WithLogger(quiet), game.WithSeed(3)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Pools.EnemyBullets = 0
	if _, err := game.New(cfg, game.WithLogger(quiet)); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New error = %v, want ErrInvalidConfig", err)
	}
}

func TestFirePatternUnknownIsNoop(t *testing.T) {
	g := newGame(t, "sandbox")
	if g.FirePattern("999-missing") {
		t.Error("unknown pattern accepted")
	}
	g.Step(16 * time.Millisecond)
	if c := g.Counters(); c.EnemyBullets != 0 || g.ActivePattern() != "" {
		t.Errorf("unknown pattern changed state: %+v, %q", c, g.ActivePattern())
	}
}

func TestSandboxFirePatternReplacesStage(t *testing.T) {
	g := newGame(t, "sandbox")

	if !g.FirePattern("003-ring-burst") {
		t.Fatal("ring refused")
	}
	g.Step(16 * time.Millisecond)
	if got := g.Counters().EnemyBullets; got != 26 {
		t.Fatalf("ring bullets = %d, want 26", got)
	}
	if g.ActivePattern() != "003: 全方位リング" {
		t.Errorf("active pattern = %q", g.ActivePattern())
	}

	g.FirePattern("013-cross")
	g.Step(16 * time.Millisecond)
	if got := g.Counters().EnemyBullets; got != 4 {
		t.Errorf("bullets after second pattern = %d, want 4", got)
	}
}

func TestCommandsApplyAtNextTick(t *testing.T) {
	g := newGame(t, "sandbox")
	g.FirePattern("003-ring-burst")
	if got := g.Counters().EnemyBullets; got != 0 {
		t.Fatalf("bullets before tick = %d, want 0", got)
	}
	g.Step(16 * time.Millisecond)
	if got := g.Counters().EnemyBullets; got != 26 {
		t.Errorf("bullets after tick = %d, want 26", got)
	}
}

func TestClearAllBulletsCancelsPatterns(t *testing.T) {
	g := newGame(t, "sandbox")
	g.FirePattern("004-spiral")
	for range 10 {
		g.Step(16 * time.Millisecond)
	}
	if c := g.Counters(); c.EnemyBullets == 0 || c.Emissions != 1 {
		t.Fatalf("spiral not running: %+v", c)
	}

	g.ClearAllBullets()
	g.Step(16 * time.Millisecond)
	for range 300 {
		g.Step(16 * time.Millisecond)
		if c := g.Counters(); c.EnemyBullets != 0 {
			t.Fatalf("spawn after clear at tick %d: %+v", c.Tick, c)
		}
	}
	if c := g.Counters(); c.Emissions != 0 || c.Timers != 0 {
		t.Errorf("leftover emissions %d timers %d", c.Emissions, c.Timers)
	}
}

func TestAdvanceFixedStep(t *testing.T) {
	g := newGame(t, "sandbox")
	if n := g.Advance(10 * time.Millisecond); n != 0 {
		t.Errorf("ticks = %d, want 0", n)
	}
	if n := g.Advance(10 * time.Millisecond); n != 1 {
		t.Errorf("ticks = %d, want 1", n)
	}
	// A stall is capped at max delta
	if n := g.Advance(time.Second); n != 15 {
		t.Errorf("ticks after stall = %d, want 15", n)
	}
	if g.Counters().Tick != 16 {
		t.Errorf("tick = %d, want 16", g.Counters().Tick)
	}
}

func TestGravityCommands(t *testing.T) {
	g := newGame(t, "sandbox")
	defaults := g.GravitySources()

	g.SetActiveGravitySourceCount(1)
	if g.GravitySources()[1].Strength == 0 {
		t.Fatal("source count applied before the tick")
	}
	g.Step(time.Millisecond)
	src := g.GravitySources()
	if src[0].Strength != defaults[0].Strength || src[1].Strength != 0 || src[2].Strength != 0 {
		t.Errorf("strengths after count 1 = %v %v %v", src[0].Strength, src[1].Strength, src[2].Strength)
	}

	g.SetActiveGravitySourceCount(99)
	g.Step(time.Millisecond)
	for i, s := range g.GravitySources() {
		if s.Strength != defaults[i].Strength {
			t.Errorf("source %d strength = %v, want %v", i, s.Strength, defaults[i].Strength)
		}
	}

	g.SetGravitySourceStrength(-4, 42)
	g.SetGravityEnabled(false)
	g.Step(time.Millisecond)
	if s := g.GravitySources()[0]; s.Strength != 42 {
		t.Errorf("clamped index strength = %v, want 42", s.Strength)
	}
	if g.GravityEnabled() {
		t.Error("gravity still enabled")
	}
}

func TestSetGravitySourceStrengthClampLogged(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"negative", -5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			g := newGame(t, "sandbox", game.WithLogger(logger))

			g.SetGravitySourceStrength(1, tt.value)
			g.Step(time.Millisecond)
			if s := g.GravitySources()[1]; s.Strength != 0 || s.Base != 0 {
				t.Errorf("strength = %v base = %v, want 0", s.Strength, s.Base)
			}
			if !strings.Contains(buf.String(), "gravity source strength clamped") {
				t.Errorf("log = %q, want strength clamp entry", buf.String())
			}
		})
	}
}

func TestSetOriginClamped(t *testing.T) {
	g := newGame(t, "sandbox")
	g.SetOrigin(-10, 700)
	g.Step(time.Millisecond)
	if x, y := g.Origin(); x != 0 || y != parameter.WorldHeight {
		t.Errorf("origin = (%v, %v), want (0, %v)", x, y, parameter.WorldHeight)
	}
}

func TestEntitiesIncludePlayer(t *testing.T) {
	g := newGame(t, "game")
	es := g.Entities()
	if len(es) == 0 || es[0].Kind != game.KindPlayer {
		t.Fatalf("entities = %v, want player first", es)
	}
	if es[0].X != parameter.PlayerStartX || es[0].Y != parameter.PlayerStartY {
		t.Errorf("player at (%v, %v)", es[0].X, es[0].Y)
	}

	g.Fire(400, 0)
	g.Step(time.Millisecond)
	var bullets int
	for _, e := range g.Entities() {
		if e.Kind == game.KindPlayerBullet {
			bullets++
		}
	}
	if bullets != 1 {
		t.Errorf("player bullets drawn = %d, want 1", bullets)
	}
}

// runUntilGameOver drops a column of bullets onto the player
func runUntilGameOver(t *testing.T, g *game.Game) {
	t.Helper()
	g.FirePattern("001-line-rain")
	for range 600 {
		g.Step(16 * time.Millisecond)
		if g.GameOver() {
			return
		}
	}
	t.Fatal("game never ended")
}

func TestGameOverAndInputRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockObserver(ctrl)

	cfg := config.Default()
	cfg.Gravity.Enabled = false
	g, err := game.New(cfg, game.WithLogger(quiet), game.WithSeed(3), game.WithObserver(obs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := g.Session()

	obs.EXPECT().PlayerHit(gomock.Any()).Times(1)
	runUntilGameOver(t, g)

	// Further ticks leave the terminal state untouched
	score := g.Score()
	for range 30 {
		g.Step(16 * time.Millisecond)
	}
	if !g.GameOver() || g.Score() != score {
		t.Fatalf("terminal state changed: over=%v score=%d", g.GameOver(), g.Score())
	}
	if c := g.Counters(); c.Timers != 0 {
		t.Errorf("timers after game over = %d, want 0", c.Timers)
	}

	var session string
	obs.EXPECT().Restarted(gomock.Any()).Do(func(s string) { session = s }).Times(1)
	g.Fire(400, 0)
	g.Step(16 * time.Millisecond)

	if g.GameOver() {
		t.Fatal("input did not restart")
	}
	if session == "" || session == first || g.Session() != session {
		t.Errorf("session = %q, first %q, current %q", session, first, g.Session())
	}
	c := g.Counters()
	if c.Score != 0 || c.PlayerBullets != 0 || c.EnemyBullets != 0 || c.Enemies != 0 {
		t.Errorf("restart left state: %+v", c)
	}
	if c.Tick != 1 {
		t.Errorf("tick after restart = %d, want 1", c.Tick)
	}
}

func TestRestartRestoresGravity(t *testing.T) {
	g := newGame(t, "sandbox")
	defaults := g.GravitySources()

	g.SetActiveGravitySourceCount(0)
	g.SetGravityEnabled(false)
	g.FirePattern("004-spiral")
	for range 20 {
		g.Step(16 * time.Millisecond)
	}

	g.Restart()
	g.Step(0)
	if !g.GravityEnabled() {
		t.Error("gravity not re-enabled")
	}
	for i, s := range g.GravitySources() {
		if s.Strength != defaults[i].Strength || s.Angle != defaults[i].Angle {
			t.Errorf("source %d = %+v, want %+v", i, s, defaults[i])
		}
	}
	if c := g.Counters(); c.EnemyBullets != 0 || c.Emissions != 0 || c.Timers != 0 {
		t.Errorf("restart left state: %+v", c)
	}
	if g.ActivePattern() != "" {
		t.Errorf("active pattern = %q after restart", g.ActivePattern())
	}
}
