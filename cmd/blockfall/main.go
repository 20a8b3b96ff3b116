package main

import (
	"flag"
	"log"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

func main() {
	width := flag.Int("width", game.DefaultWidth, "Well width in cells.")
	height := flag.Int("height", game.DefaultHeight, "Well height in cells.")
	level := flag.Int("level", 1, "Starting level.")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Piece RNG seed. 0 picks the fixed default.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	flag.Parse()

	world := game.NewWorld(game.Config{
		Width:      *width,
		Height:     *height,
		StartLevel: *level,
		Seed:       *seed,
	})

	scheduler := game.NewScheduler(world)
	for _, system := range game.DefaultSystems() {
		scheduler.Register(system)
	}

	palette := newWindowPalette()
	guard, err := game.AcquireTheme(palette, gamePalette)
	if err != nil {
		log.Fatalf("Failed to acquire theme: %v", err)
	}
	defer guard.Restore()

	app := &App{
		world:     world,
		scheduler: scheduler,
		palette:   palette,
	}

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		screenW, screenH := app.screenSize()
		backend.CreateWindow("Blockfall", screenW, screenH)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

		app.imguiBackend = &debugui_ebiten.ImguiBackend{EbitenBackend: backend}
		app.imguiInput = &debugui.InputState{}
		scheduler.Register(&debugui.OverlaySystem{
			Panels: []debugui.Panel{
				debugui.NewSessionStatsPanel(scheduler, 120),
				debugui.NewBoardInspectorPanel(),
			},
			InputState: app.imguiInput,
		})
	}

	ebiten.SetWindowSize(app.screenSize())
	ebiten.SetWindowTitle("Blockfall")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}

	if err := guard.Restore(); err != nil {
		log.Printf("Failed to restore theme: %v", err)
	}

	log.Printf("Final score %s after %d lines.", world.Session.ScoreString(), world.Session.Lines())
}
