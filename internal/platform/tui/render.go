package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/critterbits/internal/core"
)

var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorOrange:  "208",
	core.ColorGray:    "245",
	core.ColorPurple:  "93",
}

// overlayBackground sits behind debug outlines so they read apart from
// scene glyphs of the same colour.
const overlayBackground = lipgloss.Color("236")

type styleKey struct {
	color   core.Color
	overlay bool
}

// screenRenderer turns Screen rows into styled text. Styles are built once
// per colour/overlay pair.
type screenRenderer struct {
	styles map[styleKey]lipgloss.Style
}

func newScreenRenderer() *screenRenderer {
	return &screenRenderer{styles: make(map[styleKey]lipgloss.Style)}
}

func (r *screenRenderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg, ok := palette[k.color]; ok {
		st = st.Foreground(fg)
	}
	if k.overlay {
		st = st.Bold(true).Background(overlayBackground)
	}
	r.styles[k] = st
	return st
}

// plain reports whether a run can be written without escape codes.
func (k styleKey) plain() bool {
	return !k.overlay && k.color == core.ColorDefault
}

func (r *screenRenderer) render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			first := s.GetCell(x, y)
			key := styleKey{first.Color, first.Overlay}
			run.Reset()
			for ; x < s.Width(); x++ {
				c := s.GetCell(x, y)
				if c.Color != key.color || c.Overlay != key.overlay {
					break
				}
				run.WriteRune(c.Rune)
			}
			if key.plain() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen converts a Screen buffer to styled text. Cells sharing a
// colour and overlay flag are written as one styled run.
func RenderScreen(s *core.Screen) string {
	return newScreenRenderer().render(s)
}
