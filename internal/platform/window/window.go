// Package window is the desktop frontend: a raylib window that draws the
// board as colored squares with the FPS and score as text.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is what the window needs from the simulation.
type Game interface {
	ID() string
	Config() config.SnakeConfig
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	State() core.GameState
	Drawables() []snake.Drawable
	HUDText() (fps, score string)
}

// keyBindings maps held keys to actions. Several may be down at once; the
// simulation resolves the precedence.
var keyBindings = []struct {
	key    int32
	action core.Action
}{
	{rl.KeyW, core.ActionUp},
	{rl.KeyUp, core.ActionUp},
	{rl.KeyS, core.ActionDown},
	{rl.KeyDown, core.ActionDown},
	{rl.KeyA, core.ActionLeft},
	{rl.KeyLeft, core.ActionLeft},
	{rl.KeyD, core.ActionRight},
	{rl.KeyRight, core.ActionRight},
}

type palette struct {
	background rl.Color
	text       rl.Color
	roles      map[core.Color]rl.Color
}

func newPalette(p config.Palette) palette {
	c := func(rgb config.RGB) rl.Color {
		r, g, b := rgb.Bytes()
		return rl.NewColor(r, g, b, 255)
	}
	return palette{
		background: c(p.Background),
		text:       c(p.Text),
		roles: map[core.Color]rl.Color{
			core.ColorHead:    c(p.Head),
			core.ColorSegment: c(p.Segment),
			core.ColorFood:    c(p.Food),
		},
	}
}

// Run opens the window and plays until it is closed with Escape or the
// window's close button.
func Run(game Game, rc core.RuntimeConfig, logger *log.Logger) error {
	cfg := game.Config()
	d := cfg.Display

	rl.InitWindow(int32(d.Width), int32(d.Height), d.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window: could not open %dx%d window", d.Width, d.Height)
	}
	rl.SetExitKey(rl.KeyEscape)

	fps := rc.TickRate
	if fps <= 0 {
		fps = d.TargetFPS
	}
	rl.SetTargetFPS(int32(fps))

	game.Reset(rc)
	logger.Info("run started", "game", game.ID(), "seed", rc.Seed, "run", game.State().Run)

	board := snake.Board{Width: cfg.Board.Width, Height: cfg.Board.Height}
	colors := newPalette(d.Colors)
	in := core.NewInputFrame()

	for !rl.WindowShouldClose() {
		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))

		pollInput(&in)
		res := game.Step(in, dt)
		in.Clear()
		for _, ev := range res.Events {
			logEvent(logger, ev)
		}

		draw(game, board, colors, int32(d.FontSize))
	}

	state := game.State()
	logger.Info("window closed", "score", state.Score, "resets", state.Resets)
	return nil
}

func pollInput(in *core.InputFrame) {
	for _, b := range keyBindings {
		if rl.IsKeyDown(b.key) {
			in.Set(b.action)
		}
	}
}

func logEvent(logger *log.Logger, ev core.Event) {
	if ev.Name == core.EventGameOver {
		logger.Info(ev.Name, ev.Fields...)
		return
	}
	logger.Debug(ev.Name, ev.Fields...)
}

func draw(game Game, board snake.Board, colors palette, fontSize int32) {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	vp := snake.Viewport{Width: float64(w), Height: float64(h), Board: board}

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colors.background)

	for _, d := range game.Drawables() {
		x, y, dw, dh := vp.Rect(d)
		rl.DrawRectangleRec(rl.Rectangle{
			X:      float32(x),
			Y:      float32(y),
			Width:  float32(dw),
			Height: float32(dh),
		}, colors.roles[d.Role])
	}

	fps, score := game.HUDText()
	rl.DrawText(fps, 0, 0, fontSize, colors.text)

	tw := rl.MeasureText(score, fontSize)
	sx, sy := snake.ScoreAnchor(float64(tw), float64(fontSize), float64(w), float64(h))
	rl.DrawText(score, int32(sx), int32(sy), fontSize, colors.text)
}
