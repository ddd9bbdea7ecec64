package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slope/ecs"
	"github.com/milk9111/slope/ecs/component"
)

// WindowSystem applies window-mode requests from input: F11 flips
// between windowed and borderless fullscreen.
type WindowSystem struct{}

func NewWindowSystem() *WindowSystem {
	return &WindowSystem{}
}

func (ws *WindowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	toggle := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		if input.FullscreenPressed {
			toggle = true
		}
	})
	if toggle {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}
