package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/AidanMaskelyne/invaders/core"
	"github.com/AidanMaskelyne/invaders/engine"
)

// Entity glyphs
const (
	playerGlyph = '^'
	bulletGlyph = '|'
	enemyGlyph  = 'W'
)

// TerminalRenderer draws the simulation state into a tcell screen
//
// Logical space is a centered y-up playfield; the terminal is y-down with
// the origin top-left, so drawing flips the vertical axis. Rendering reads
// the world between ticks under the update lock and never mutates it
type TerminalRenderer struct {
	screen tcell.Screen

	playerStyle tcell.Style
	bulletStyle tcell.Style
	enemyStyle  tcell.Style
	hudStyle    tcell.Style
	titleStyle  tcell.Style
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return &TerminalRenderer{
		screen:      screen,
		playerStyle: base.Foreground(tcell.ColorGreen).Bold(true),
		bulletStyle: base.Foreground(tcell.ColorYellow),
		enemyStyle:  base.Foreground(tcell.ColorRed),
		hudStyle:    base.Foreground(tcell.ColorWhite),
		titleStyle:  base.Foreground(tcell.ColorAqua).Bold(true),
	}
}

// RenderFrame draws one frame for the current application state
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.Clear()

	state := ctx.World.Resources.State.Get()
	switch state {
	case core.StateMenu:
		r.drawMenu()
	case core.StateRunning:
		r.drawWorld(ctx)
		r.drawScoreboard(ctx)
	case core.StateGameOver:
		r.drawWorld(ctx)
		r.drawScoreboard(ctx)
		r.drawGameOver(ctx)
	}

	r.screen.Show()
}

// drawWorld draws every renderable entity under the world update lock so a
// tick never interleaves with the read
func (r *TerminalRenderer) drawWorld(ctx *engine.GameContext) {
	w := ctx.World
	width, height := r.screen.Size()
	cfg := w.Resources.Config

	w.RunSafe(func() {
		entities := w.Query().
			With(w.Transforms).
			With(w.Kinds).
			Execute()

		for _, e := range entities {
			tf, ok := w.Transforms.Get(e)
			if !ok {
				continue
			}
			k, ok := w.Kinds.Get(e)
			if !ok {
				continue
			}

			// Normalize centered logical coords to [0,1], flip y for the
			// terminal's y-down grid
			nx := (tf.X + cfg.HalfWidth) / (2 * cfg.HalfWidth)
			ny := 1 - (tf.Y+cfg.HalfHeight)/(2*cfg.HalfHeight)
			cx := int(nx * float64(width))
			cy := int(ny * float64(height))
			if cx < 0 || cx >= width || cy < 0 || cy >= height {
				continue
			}

			glyph, style := r.appearance(k.Kind)
			r.screen.SetContent(cx, cy, glyph, nil, style)
		}
	})
}

func (r *TerminalRenderer) appearance(kind core.EntityKind) (rune, tcell.Style) {
	switch kind {
	case core.KindPlayer:
		return playerGlyph, r.playerStyle
	case core.KindBullet:
		return bulletGlyph, r.bulletStyle
	case core.KindEnemy:
		return enemyGlyph, r.enemyStyle
	}
	return '?', r.hudStyle
}

// drawScoreboard draws the score in the top-left corner
func (r *TerminalRenderer) drawScoreboard(ctx *engine.GameContext) {
	score := ctx.World.Resources.Score.Value()
	r.drawText(1, 0, fmt.Sprintf("SCORE %d", score), r.hudStyle)
}

// drawMenu draws the title screen
func (r *TerminalRenderer) drawMenu() {
	width, height := r.screen.Size()
	cy := height / 2

	r.drawCentered(width, cy-2, "I N V A D E R S", r.titleStyle)
	r.drawCentered(width, cy, "ENTER  start game", r.hudStyle)
	r.drawCentered(width, cy+1, "ESC    quit", r.hudStyle)
}

// drawGameOver overlays the final score and restart hint on the last frame
func (r *TerminalRenderer) drawGameOver(ctx *engine.GameContext) {
	width, height := r.screen.Size()
	cy := height / 2
	score := ctx.World.Resources.Score.Value()

	r.drawCentered(width, cy-1, "G A M E  O V E R", r.titleStyle)
	r.drawCentered(width, cy+1, fmt.Sprintf("final score %d", score), r.hudStyle)
	r.drawCentered(width, cy+2, "ENTER  back to menu", r.hudStyle)
}

func (r *TerminalRenderer) drawCentered(width, y int, text string, style tcell.Style) {
	x := (width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for i, ch := range text {
		if x+i >= width {
			break
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
