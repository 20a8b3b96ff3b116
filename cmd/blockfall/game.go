package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

const (
	cellSize   = 30
	marginX    = 50
	marginY    = 50
	panelWidth = 160

	tickSeconds = 1.0 / 60.0

	repeatDelay = 0.2
	repeatRate  = 0.05
)

// App implements ebiten.Game: it polls input, steps the simulation once per
// tick and draws the well.
type App struct {
	world     *game.World
	scheduler *game.Scheduler
	palette   *windowPalette

	imguiBackend *debugui_ebiten.ImguiBackend // nil unless -debug
	imguiInput   *debugui.InputState

	leftHeld  float64
	rightHeld float64
	downHeld  float64
}

func (a *App) Update() error {
	if a.imguiBackend != nil {
		a.imguiBackend.BeginFrame()
	}

	a.pollInput()
	a.scheduler.Once(tickSeconds)

	if a.imguiBackend != nil {
		a.imguiBackend.EndFrame()
	}

	if a.world.Session.State() == game.StateDone {
		return ebiten.Termination
	}
	return nil
}

func (a *App) pollInput() {
	if a.imguiInput != nil && a.imguiInput.WantCaptureKeyboard {
		a.leftHeld, a.rightHeld, a.downHeld = 0, 0, 0
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.world.Enqueue(game.ActionExit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.world.Enqueue(game.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		a.world.Enqueue(game.ActionRotateCW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.world.Enqueue(game.ActionRotateCCW)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.world.Enqueue(game.ActionHardDrop)
	}

	a.leftHeld = a.repeatKey(ebiten.KeyLeft, a.leftHeld, game.ActionMoveLeft)
	a.rightHeld = a.repeatKey(ebiten.KeyRight, a.rightHeld, game.ActionMoveRight)

	// Soft drop repeats at the fast rate with no initial delay.
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		a.downHeld += tickSeconds
		if a.downHeld > repeatRate {
			a.downHeld = 0
			a.world.Enqueue(game.ActionSoftDrop)
		}
	} else {
		a.downHeld = 0
	}
}

// repeatKey implements delayed auto-shift for horizontal movement: one
// action on the initial press, then repeats at repeatRate once the key has
// been held past repeatDelay.
func (a *App) repeatKey(key ebiten.Key, held float64, action game.Action) float64 {
	switch {
	case inpututil.IsKeyJustPressed(key):
		a.world.Enqueue(action)
		return 0
	case ebiten.IsKeyPressed(key):
		held += tickSeconds
		if held > repeatDelay {
			held -= repeatRate
			a.world.Enqueue(action)
		}
		return held
	default:
		return 0
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imguiBackend != nil {
		a.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return a.screenSize()
}

func (a *App) screenSize() (int, int) {
	board := a.world.Session.Board()
	return marginX*2 + board.Width*cellSize + panelWidth, marginY*2 + board.Height*cellSize
}
