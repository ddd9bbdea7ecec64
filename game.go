package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slope/assets"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
	"github.com/milk9111/slope/ecs/entity"
	"github.com/milk9111/slope/ecs/system"
	"github.com/milk9111/slope/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	extender  *system.FloorExtenderSystem

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	debug   bool
}

// NewGame assembles the scene: camera, player ball, initial plane,
// light, skybox, floor generator, then the staged update pipeline.
func NewGame(debug bool) (*Game, error) {
	world := ecs.NewWorld()

	if _, err := entity.NewCamera(world); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(world); err != nil {
		return nil, err
	}

	floorSpec, err := prefabs.LoadFloorSpec()
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewInitialFloor(world, floorSpec); err != nil {
		return nil, err
	}
	if _, err := entity.NewLight(world); err != nil {
		return nil, err
	}
	if _, err := entity.NewFloorGenerator(world); err != nil {
		return nil, err
	}

	_, skySpec, err := entity.NewSkybox(world)
	if err != nil {
		return nil, err
	}
	skyLoad := assets.LoadImageAsync(skySpec.Image)

	decorSpec, err := prefabs.LoadDecorSpec()
	if err != nil {
		return nil, err
	}

	extender := system.NewFloorExtenderSystem(floorSpec)
	scheduler := ecs.NewScheduler(
		ecs.NewStage("input",
			system.NewInputSystem(),
			system.NewWindowSystem(),
			system.NewPlayerControllerSystem(),
		),
		ecs.NewStage("simulate", system.NewPhysicsSystem()),
		ecs.NewStage("camera", system.NewCameraFollowSystem()),
		ecs.NewStage("procedural", extender, system.NewDecorSystem(decorSpec)),
		ecs.NewStage("postload", system.NewSkyboxCorrectorSystem(skyLoad)),
	)

	g := &Game{
		world:     world,
		scheduler: scheduler,
		renderer:  system.NewRenderSystem(),
		extender:  extender,
		debug:     debug,
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if g.paused {
		g.pauseUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
		}
		return nil
	}

	g.frames++
	g.drainWatcher()
	g.scheduler.Update(g.world)

	ecs.ForEach(g.world, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if input.PausePressed {
			g.paused = true
		}
	})

	return nil
}

// drainWatcher re-applies floor tuning when a prefab file changes.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			if spec, err := prefabs.LoadFloorSpec(); err == nil {
				g.extender.SetSpec(spec)
			} else {
				log.Printf("prefab reload: %v", err)
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
