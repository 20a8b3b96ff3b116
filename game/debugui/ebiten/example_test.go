package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
)

// Game implements ebiten.Game and layers the ImGui overlay on top of the
// session's simulation step.
type Game struct {
	world        *game.World
	scheduler    *game.Scheduler
	imguiBackend debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems (including the overlay system)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the well and pieces to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Blockfall Debug Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	// Create the world and the simulation pipeline
	world := game.NewWorld(game.Config{})
	scheduler := game.NewScheduler(world)
	for _, system := range game.DefaultSystems() {
		scheduler.Register(system)
	}

	// Register the overlay behind the simulation systems
	scheduler.Register(&debugui.OverlaySystem{
		Panels: []debugui.Panel{
			debugui.NewSessionStatsPanel(scheduler, 120),
			debugui.NewBoardInspectorPanel(),
		},
		InputState: &debugui.InputState{},
	})

	// Run the game
	if err := ebiten.RunGame(&Game{
		world:        world,
		scheduler:    scheduler,
		imguiBackend: debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
	}); err != nil {
		panic(err)
	}
}
