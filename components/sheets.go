package components

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/tide-fighter/render"
)

// ErrMissingSheet is returned when an entity needs a sheet that was never loaded
var ErrMissingSheet = errors.New("missing sprite sheet")

// Sheet names shared by the asset files and entity constructors
const (
	SheetPlayer     = "player"
	SheetShield     = "shield"
	SheetGears      = "gears"
	SheetSmoke      = "smoke"
	SheetFire       = "fire"
	SheetLayerSky   = "layer-sky"
	SheetLayerCity  = "layer-city"
	SheetLayerReef  = "layer-reef"
	SheetLayerGears = "layer-gears"
)

// Sheets is the set of loaded sprite sheets keyed by name
type Sheets map[string]*render.Sheet

// Lookup returns the named sheet or ErrMissingSheet
func (s Sheets) Lookup(name string) (*render.Sheet, error) {
	sheet, ok := s[name]
	if !ok || sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingSheet, name)
	}
	return sheet, nil
}

// RequiredSheets lists every sheet a match can construct an entity from
func RequiredSheets() []string {
	names := []string{
		SheetPlayer, SheetShield, SheetGears, SheetSmoke, SheetFire,
		SheetLayerSky, SheetLayerCity, SheetLayerReef, SheetLayerGears,
	}
	for _, kind := range AllEnemyKinds() {
		names = append(names, kind.Spec().Sheet)
	}
	return names
}

// Require checks that every required sheet is present
func (s Sheets) Require() error {
	var errs []error
	for _, name := range RequiredSheets() {
		if _, err := s.Lookup(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
