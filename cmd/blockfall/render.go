package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

func (a *App) Draw(screen *ebiten.Image) {
	theme := a.palette.state
	screen.Fill(theme.Background)

	sess := a.world.Session
	board := sess.Board()

	vector.StrokeRect(screen,
		marginX-2, marginY-2,
		float32(board.Width*cellSize+4), float32(board.Height*cellSize+4),
		2, theme.Grid, false)

	board.Each(func(c game.Cell, blk game.Block) {
		a.drawBlock(screen, c.Row(), c.Col(), tintColors[blk.Tint])
	})

	if piece, ok := sess.Active(); ok {
		ghost := game.Dropped(board, piece)
		ghostColor := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
		for _, c := range ghost.Cells() {
			a.fillCell(screen, c.Row(), c.Col(), ghostColor)
		}

		for _, c := range piece.Cells() {
			if c.Row() >= 0 {
				a.drawBlock(screen, c.Row(), c.Col(), tintColors[piece.Tint])
			}
		}
	}

	a.drawPanel(screen)
	a.drawBanner(screen)

	if a.imguiBackend != nil {
		a.imguiBackend.Draw(screen)
	}
}

func (a *App) drawBlock(screen *ebiten.Image, row, col int, clr color.RGBA) {
	a.fillCell(screen, row, col, clr)
	vector.StrokeRect(screen,
		float32(marginX+col*cellSize), float32(marginY+row*cellSize),
		cellSize, cellSize,
		1, a.palette.state.Background, false)
}

func (a *App) fillCell(screen *ebiten.Image, row, col int, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(marginX+col*cellSize), float32(marginY+row*cellSize),
		cellSize, cellSize,
		clr, false)
}

func (a *App) drawPanel(screen *ebiten.Image) {
	sess := a.world.Session
	board := sess.Board()
	textX := marginX + board.Width*cellSize + 20

	ebitenutil.DebugPrintAt(screen, "SCORE", textX, marginY)
	ebitenutil.DebugPrintAt(screen, sess.ScoreString(), textX, marginY+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", sess.Level()), textX, marginY+48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", sess.Lines()), textX, marginY+64)

	ebitenutil.DebugPrintAt(screen, "NEXT", textX, marginY+96)
	previewY := marginY + 112
	for _, kind := range sess.NextKinds() {
		ebitenutil.DebugPrintAt(screen, kind.String(), textX, previewY)
		previewY += 16
	}
}

func (a *App) drawBanner(screen *ebiten.Image) {
	sess := a.world.Session
	board := sess.Board()
	centerX := marginX + board.Width*cellSize/2 - 50
	centerY := marginY + board.Height*cellSize/2

	switch sess.State() {
	case game.StateIdle:
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO START", centerX, centerY)
	case game.StatePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", centerX, centerY)
		ebitenutil.DebugPrintAt(screen, "ENTER resume / ESC quit", centerX, centerY+16)
	case game.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER", centerX, centerY)
		ebitenutil.DebugPrintAt(screen, "ENTER retry / ESC quit", centerX, centerY+16)
	}
}
