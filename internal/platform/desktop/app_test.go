package desktop

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/underwater-snake/internal/audio"
	"github.com/vovakirdan/underwater-snake/internal/config"
	"github.com/vovakirdan/underwater-snake/internal/core"
	"github.com/vovakirdan/underwater-snake/internal/games/snake"
	"github.com/vovakirdan/underwater-snake/internal/storage"
)

type recordingSaver struct {
	saved []storage.RoundResult
}

func (s *recordingSaver) SaveRound(r storage.RoundResult) (int64, error) {
	s.saved = append(s.saved, r)
	return int64(len(s.saved)), nil
}

type countingPublisher struct {
	frames int
}

func (p *countingPublisher) Publish(any) error {
	p.frames++
	return nil
}

type cuePlayer struct {
	cues []audio.Cue
}

func (p *cuePlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }
func (p *cuePlayer) Close() error { return nil }

func TestFramePressed(t *testing.T) {
	tests := []struct {
		name    string
		keys    []ebiten.Key
		actions []core.Action
		quit    bool
	}{
		{"arrow", []ebiten.Key{ebiten.KeyArrowUp}, []core.Action{core.ActionUp}, false},
		{"wasd", []ebiten.Key{ebiten.KeyA, ebiten.KeyS}, []core.Action{core.ActionLeft, core.ActionDown}, false},
		{"pause", []ebiten.Key{ebiten.KeyP}, []core.Action{core.ActionPause}, false},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, nil, true},
		{"unbound", []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := framePressed(tc.keys, &frame)
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if len(frame.Actions) != len(tc.actions) {
				t.Errorf("frame has %d actions, expected %d", len(frame.Actions), len(tc.actions))
			}
			for _, a := range tc.actions {
				if !frame.Has(a) {
					t.Errorf("frame missing %v", a)
				}
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	geom := snake.DefaultGeometry()

	r := cellRect(geom, snake.Cell{X: 2, Y: 3})
	expected := rect{X: 135, Y: 165, W: 30, H: 30}
	if r != expected {
		t.Errorf("cellRect = %+v, expected %+v", r, expected)
	}

	f := frameRect(geom)
	if f.X != 70 || f.W != 760 {
		t.Errorf("frameRect = %+v, expected x=70 w=760", f)
	}
}

func newTestApp(saver *recordingSaver, pub *countingPublisher, player *cuePlayer) *App {
	return NewApp(snake.NewWithConfig(config.DefaultSnakeConfig()), Options{
		Store:     saver,
		Audio:     player,
		Spectator: pub,
		Logger:    log.New(io.Discard),
		Seed:      7,
	})
}

func TestAppRunsRoundToWall(t *testing.T) {
	saver, pub, player := &recordingSaver{}, &countingPublisher{}, &cuePlayer{}
	app := newTestApp(saver, pub, player)

	side, _ := app.Layout(1920, 1080)
	if side != 900 {
		t.Errorf("Layout = %d, expected 900", side)
	}

	// Swim right into the wall: the head starts at x=6 on a 25 wide board.
	for range 12 * 25 {
		if err := app.step(nil); err != nil {
			t.Fatalf("step: %v", err)
		}
		if !app.state.Running {
			break
		}
	}
	if app.state.Running {
		t.Fatal("Round should have ended at the wall")
	}
	if pub.frames == 0 {
		t.Error("Moves should be published")
	}
	if len(player.cues) == 0 || player.cues[len(player.cues)-1] != audio.CueGameOver {
		t.Errorf("cues = %v, expected a game over cue last", player.cues)
	}
}

func TestAppQuitKey(t *testing.T) {
	saver, pub, player := &recordingSaver{}, &countingPublisher{}, &cuePlayer{}
	app := newTestApp(saver, pub, player)

	err := app.step([]ebiten.Key{ebiten.KeyQ})
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("step = %v, expected termination", err)
	}
	if !app.quit {
		t.Error("App should remember it quit")
	}
	if len(saver.saved) != 0 {
		t.Error("A zero score round should not be saved")
	}
}
