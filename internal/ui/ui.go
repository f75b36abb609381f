// Package ui runs the raylib window: it polls input, feeds the room and
// draws the room's state every frame.
package ui

import (
	"context"
	"ctchen222/titac/internal/config"
	"ctchen222/titac/internal/game"
	"ctchen222/titac/internal/layout"
	"ctchen222/titac/internal/room"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	glyphFontSize   = 96
	overlayFontSize = 16
	winLineThick    = 6
)

var overlayColor = rl.Fade(rl.Gray, 0.5)

// Run opens the window and blocks until it is closed (Escape or the close
// button) or ctx is cancelled.
func Run(ctx context.Context, win config.Window, r *room.Room) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(win.FPS))
	slog.InfoContext(ctx, "Window opened", "width", win.Width, "height", win.Height, "fps", win.FPS)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			slog.InfoContext(ctx, "Context cancelled, closing window")
			return
		}

		handleInput(ctx, r)
		r.Update(ctx, time.Now())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw(r.Snapshot())
		rl.EndDrawing()
	}

	slog.InfoContext(ctx, "Window closed")
}

func handleInput(ctx context.Context, r *room.Room) {
	if rl.IsKeyPressed(rl.KeySpace) {
		r.Reset(ctx)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if index, ok := layout.IndexAt(pos.X, pos.Y, rl.GetScreenWidth(), rl.GetScreenHeight()); ok {
			r.Click(ctx, index)
		}
	}
}

func draw(s room.State) {
	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()

	drawGrid(s.Board, width, height)

	if s.HasWinner {
		from, to := layout.LineSegment(s.WinningLine, width, height)
		rl.DrawLineEx(rl.NewVector2(from.X, from.Y), rl.NewVector2(to.X, to.Y), winLineThick, rl.Red)
	}

	if msg := layout.Overlay(s.Phase); msg != "" {
		rl.DrawRectangle(0, 0, int32(width), int32(height), overlayColor)
		rl.DrawText(msg, 0, 0, overlayFontSize, rl.Black)
	}
}

func drawGrid(board game.Board, width, height int) {
	cw, ch := layout.CellSize(width, height)

	for i := 1; i < game.Side; i++ {
		y := int32(ch * i)
		x := int32(cw * i)
		rl.DrawLine(0, y, int32(width), y, rl.Black)
		rl.DrawLine(x, 0, x, int32(height), rl.Black)
	}

	left, top := layout.GlyphPadding(width, height)
	for i, c := range board {
		p := layout.CellOrigin(i, width, height)
		rl.DrawText(layout.Glyph(c), int32(p.X)+int32(left), int32(p.Y)+int32(top), glyphFontSize, rl.Gray)
	}
}
