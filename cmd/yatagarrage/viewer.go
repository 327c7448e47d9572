package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kako-jun/yatagarrage/audio"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/game"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/pattern"
)

const frameDuration = 16 * time.Millisecond

var errQuit = errors.New("quit")

// viewer draws the world onto a terminal and turns keys and clicks into commands
type viewer struct {
	screen   tcell.Screen
	game     *game.Game
	sound    *audio.SoundManager
	patterns []*pattern.Pattern
	patIdx   int
	overlay  bool

	buf      []game.Transform
	finiOnce sync.Once
}

func newViewer(screen tcell.Screen, g *game.Game, sound *audio.SoundManager) *viewer {
	return &viewer{
		screen:   screen,
		game:     g,
		sound:    sound,
		patterns: pattern.Catalog(),
		patIdx:   -1,
	}
}

func (v *viewer) close() {
	v.finiOnce.Do(v.screen.Fini)
}

// run polls input and drives the frame loop until quit or ctx ends
func (v *viewer) run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		// PollEvent returns nil once the screen is finalized
		defer v.close()

		ticker := time.NewTicker(frameDuration)
		defer ticker.Stop()
		last := time.Now()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if !v.handle(ev) {
					return errQuit
				}
			case now := <-ticker.C:
				v.game.Advance(now.Sub(last))
				last = now
				v.draw()
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// toWorld maps a cell to the world point at its center
func (v *viewer) toWorld(cx, cy int) (float64, float64) {
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) * parameter.WorldWidth / float64(w)
	y := (float64(cy) + 0.5) * parameter.WorldHeight / float64(h)
	return x, y
}

// toCell maps a world point to a cell, ok false when off screen
func (v *viewer) toCell(x, y float64) (int, int, bool) {
	w, h := v.screen.Size()
	if x < 0 || y < 0 || x >= parameter.WorldWidth || y >= parameter.WorldHeight {
		return 0, 0, false
	}
	return int(x * float64(w) / parameter.WorldWidth), int(y * float64(h) / parameter.WorldHeight), true
}

// cyclePattern moves through the catalog and fires the selection
func (v *viewer) cyclePattern(step int) {
	n := len(v.patterns)
	if n == 0 {
		return
	}
	v.patIdx = ((v.patIdx+step)%n + n) % n
	v.game.FirePattern(v.patterns[v.patIdx].ID)
}

// handle applies one terminal event; false means quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.game.SetHorizontalIntent(-1)
		case tcell.KeyRight:
			v.game.SetHorizontalIntent(1)
		case tcell.KeyDown:
			v.game.SetHorizontalIntent(0)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		cx, cy := ev.Position()
		x, y := v.toWorld(cx, cy)
		if v.game.Mode() == core.ModeSandbox {
			v.game.SetOrigin(x, y)
			if v.patIdx >= 0 {
				v.game.FirePattern(v.patterns[v.patIdx].ID)
			}
			return true
		}
		_, h := v.screen.Size()
		if cy < h/2 {
			v.game.Fire(x, y)
		} else {
			v.game.MoveTowards(x, y)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		v.game.SetHorizontalIntent(-1)
	case 'l':
		v.game.SetHorizontalIntent(1)
	case 'j':
		v.game.SetHorizontalIntent(0)
	case 'r':
		v.game.Restart()
	case 'g':
		v.game.SetGravityEnabled(!v.game.GravityEnabled())
	case '0', '1', '2', '3':
		v.game.SetActiveGravitySourceCount(int(r - '0'))
	case 'n':
		v.cyclePattern(1)
	case 'p':
		v.cyclePattern(-1)
	case 'c':
		v.game.ClearAllBullets()
	case 'd':
		v.overlay = !v.overlay
	case 'm':
		if v.sound != nil {
			v.sound.ToggleMute()
		}
	}
	return true
}

func (v *viewer) style(t game.Transform) (rune, tcell.Style) {
	switch t.Kind {
	case game.KindPlayer:
		return 'A', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case game.KindEnemy:
		return 'W', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case game.KindPlayerBullet:
		return '|', tcell.StyleDefault.Foreground(tcell.ColorWhite)
	default:
		return '*', tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(t.Color)))
	}
}

func (v *viewer) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	v.buf = v.game.AppendEntities(v.buf[:0])
	// Bullets are appended last and drawn over ships
	for _, t := range v.buf {
		cx, cy, ok := v.toCell(t.X, t.Y)
		if !ok {
			continue
		}
		r, st := v.style(t)
		v.screen.SetContent(cx, cy, r, nil, st)
	}

	hud := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	line := fmt.Sprintf("score %d", v.game.Score())
	if p := v.game.ActivePattern(); p != "" {
		line += "  " + p
	}
	if !v.game.GravityEnabled() {
		line += "  gravity off"
	}
	if v.sound != nil && v.sound.Muted() {
		line += "  muted"
	}
	v.drawText(0, 0, line, hud)

	_, h := v.screen.Size()
	if v.game.GameOver() {
		v.drawText(0, 1, "GAME OVER  any input restarts", hud.Foreground(tcell.ColorRed).Bold(true))
	}
	if v.overlay {
		dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for i, e := range v.game.Status().Snapshot() {
			if 2+i >= h {
				break
			}
			v.drawText(0, 2+i, fmt.Sprintf("%-16s %s", e.Key, e.Value), dim)
		}
	}

	v.screen.Show()
}
