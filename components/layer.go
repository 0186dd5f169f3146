package components

import (
	"fmt"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/sprite"
)

// Layer is a scrolling parallax strip drawn twice side by side for a seamless wrap
type Layer struct {
	Box
	SpeedModifier float64 // Multiplier of the global game speed
	Anim          *sprite.Animator
}

// NewLayer creates a layer from the named sheet covering the field height
func NewLayer(sheets Sheets, name string, speedModifier, fieldHeight float64) (*Layer, error) {
	sheet, err := sheets.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}
	return &Layer{
		Box:           Box{Width: constants.LayerWidth, Height: fieldHeight},
		SpeedModifier: speedModifier,
		Anim:          sprite.NewAnimator(sheet, 0),
	}, nil
}

// NewBackgroundLayers creates the back-to-front background strips
func NewBackgroundLayers(sheets Sheets, fieldHeight float64) ([]*Layer, error) {
	return newLayers(sheets, fieldHeight, []layerDef{
		{SheetLayerSky, constants.BackgroundCloudSpeed},
		{SheetLayerCity, constants.BackgroundCitySpeed},
		{SheetLayerReef, constants.BackgroundGroundSpeed},
	})
}

// NewForegroundLayers creates the strips drawn in front of the player
func NewForegroundLayers(sheets Sheets, fieldHeight float64) ([]*Layer, error) {
	return newLayers(sheets, fieldHeight, []layerDef{
		{SheetLayerGears, constants.ForegroundGearSpeed},
	})
}

type layerDef struct {
	sheet string
	speed float64
}

func newLayers(sheets Sheets, fieldHeight float64, defs []layerDef) ([]*Layer, error) {
	layers := make([]*Layer, 0, len(defs))
	for _, d := range defs {
		l, err := NewLayer(sheets, d.sheet, d.speed, fieldHeight)
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
	}
	return layers, nil
}
