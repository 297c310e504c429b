//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"trilife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line on top of the simulation and lets the user
// nudge any float parameters the sim exposes.
type Overlay struct {
	sim      core.Sim
	visible  bool
	controls []core.ParameterControl
	getter   core.FloatParameterGetter
	setter   core.FloatParameterSetter
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		o.controls = provider.ParameterControls()
	}
	if getter, ok := sim.(core.FloatParameterGetter); ok {
		o.getter = getter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		o.setter = setter
	}
	return o
}

// Update handles overlay key bindings: Tab toggles visibility, the
// bracket keys step the first exposed control.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
	if o.getter == nil || o.setter == nil || len(o.controls) == 0 {
		return
	}
	ctrl := o.controls[0]
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		if v, ok := o.getter.FloatParameter(ctrl.Key); ok {
			o.setter.SetFloatParameter(ctrl.Key, v-ctrl.Step)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		if v, ok := o.getter.FloatParameter(ctrl.Key); ok {
			o.setter.SetFloatParameter(ctrl.Key, v+ctrl.Step)
		}
	}
}

// Draw renders the status line and parameter readouts.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible {
		return
	}
	text.Draw(screen, status, basicfont.Face7x13, 6, 16, color.White)
	if o.getter == nil {
		return
	}
	y := 32
	for _, ctrl := range o.controls {
		if v, ok := o.getter.FloatParameter(ctrl.Key); ok {
			line := fmt.Sprintf("%s: %.2f  ([ / ] to adjust, applied on reset)", ctrl.Label, v)
			text.Draw(screen, line, basicfont.Face7x13, 6, y, color.White)
			y += 16
		}
	}
}
