package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tide-fighter/components"
	"github.com/lixenwraith/tide-fighter/render"
	"gopkg.in/yaml.v3"
)

//go:embed art/*.yaml
var artFS embed.FS

var (
	// ErrEmptyArt is returned for a sheet document without frames
	ErrEmptyArt = errors.New("sheet has no art")
	// ErrPaletteKey is returned for an art glyph missing from the palette
	ErrPaletteKey = errors.New("art key not in palette")
	// ErrDuplicateSheet is returned when two documents share a name
	ErrDuplicateSheet = errors.New("duplicate sheet name")
)

// defaultGlyph is drawn for palette keys without an explicit glyph
const defaultGlyph = '█'

// sheetDoc is the YAML form of a sprite sheet
// Art blocks are frames of row 0; further rows are hue-shifted copies. '.' and ' ' are transparent
type sheetDoc struct {
	Name     string            `yaml:"name"`
	Rows     int               `yaml:"rows"`
	Frames   int               `yaml:"frames"`    // Frames per row; art blocks repeat to fill, defaults to the block count
	HueShift float64           `yaml:"hue_shift"` // Degrees added per row
	Fade     bool              `yaml:"fade"`      // Blend frames progressively toward the field background
	Palette  map[string]string `yaml:"palette"`
	Glyphs   map[string]string `yaml:"glyphs"`
	Art      []string          `yaml:"art"`
}

// Load parses every embedded sheet
func Load() (components.Sheets, error) {
	return LoadFS(artFS, "art")
}

// LoadFS parses every .yaml document in dir of fsys into a sheet set
func LoadFS(fsys fs.FS, dir string) (components.Sheets, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read art dir: %w", err)
	}

	sheets := make(components.Sheets)
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		sheet, err := ParseSheet(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		if _, ok := sheets[sheet.Name]; ok {
			return nil, fmt.Errorf("%s: %w: %q", e.Name(), ErrDuplicateSheet, sheet.Name)
		}
		sheets[sheet.Name] = sheet
	}
	return sheets, nil
}

// ParseSheet decodes one sheet document
func ParseSheet(data []byte) (*render.Sheet, error) {
	var doc sheetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		return nil, errors.New("sheet name missing")
	}
	if len(doc.Art) == 0 {
		return nil, fmt.Errorf("%q: %w", doc.Name, ErrEmptyArt)
	}
	if doc.Rows <= 0 {
		doc.Rows = 1
	}
	if doc.Frames <= 0 {
		doc.Frames = len(doc.Art)
	}

	palette, err := parsePalette(doc)
	if err != nil {
		return nil, err
	}

	blocks := make([][][]rune, len(doc.Art))
	fw, fh := 0, 0
	for i, a := range doc.Art {
		blocks[i] = splitArt(a)
		fh = max(fh, len(blocks[i]))
		for _, line := range blocks[i] {
			fw = max(fw, len(line))
		}
	}
	if fw == 0 || fh == 0 {
		return nil, fmt.Errorf("%q: %w", doc.Name, ErrEmptyArt)
	}

	sheet := render.NewSheet(doc.Name, fw, fh, doc.Rows, doc.Frames, doc.Frames)
	for row := 0; row < doc.Rows; row++ {
		for frame := 0; frame < doc.Frames; frame++ {
			shift := float64(row) * doc.HueShift
			fade := 0.0
			if doc.Fade {
				fade = float64(frame) / float64(doc.Frames)
			}
			if err := paint(sheet, blocks[frame%len(blocks)], palette, row, frame, shift, fade); err != nil {
				return nil, fmt.Errorf("%q row %d frame %d: %w", doc.Name, row, frame, err)
			}
		}
	}
	return sheet, nil
}

type paletteEntry struct {
	glyph rune
	color tcell.Color
}

func parsePalette(doc sheetDoc) (map[rune]paletteEntry, error) {
	palette := make(map[rune]paletteEntry, len(doc.Palette))
	for key, hex := range doc.Palette {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("%q: palette key %q must be one character", doc.Name, key)
		}
		color, err := render.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%q: palette %q: %w", doc.Name, key, err)
		}
		entry := paletteEntry{glyph: defaultGlyph, color: color}
		if g := []rune(doc.Glyphs[key]); len(g) > 0 {
			entry.glyph = g[0]
		}
		palette[r[0]] = entry
	}
	return palette, nil
}

// splitArt turns a block into rune lines, dropping trailing blank lines
func splitArt(block string) [][]rune {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	out := make([][]rune, len(lines))
	for i, l := range lines {
		out[i] = []rune(l)
	}
	return out
}

func paint(sheet *render.Sheet, block [][]rune, palette map[rune]paletteEntry, row, frame int, shift, fade float64) error {
	x0 := frame * sheet.FrameWidth
	y0 := row * sheet.FrameHeight
	for y, line := range block {
		for x, key := range line {
			if key == '.' || key == ' ' {
				continue
			}
			entry, ok := palette[key]
			if !ok {
				return fmt.Errorf("%w: %q", ErrPaletteKey, key)
			}
			color := entry.color
			if shift != 0 {
				color = render.ShiftHue(color, shift)
			}
			if fade > 0 {
				color = render.Blend(color, render.RgbBackground, fade)
			}
			sheet.Set(x0+x, y0+y, render.Cell{Rune: entry.glyph, Style: tcell.StyleDefault.Foreground(color)})
		}
	}
	return nil
}
