package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/critterbits/internal/config"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/engine"
)

// Terminals only report key presses, so a pressed direction is held for a
// few frames to bridge the gap until the key repeats.
const holdFrames = 6

// chromeLines is the number of rows used by the info pane and help bar.
const chromeLines = 2

// Model is the Bubble Tea model for viewing a running scene.
type Model struct {
	eng      *engine.Engine
	cfg      config.EngineConfig
	title    string
	screen   *core.Screen
	painter  *screenRenderer
	keys     KeyMap
	help     help.Model
	held     map[core.Action]int
	overlays Overlays
	paused   bool
	quitting bool
}

// NewModel creates a viewer for eng. The viewport is sized to width x height
// cells minus the rows the viewer itself needs.
func NewModel(eng *engine.Engine, cfg config.EngineConfig, title string, width, height int) *Model {
	m := &Model{
		eng:     eng,
		cfg:     cfg,
		title:   title,
		screen:  core.NewScreen(1, 1),
		painter: newScreenRenderer(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    make(map[core.Action]int),
		overlays: Overlays{
			MapRegions:  cfg.Debug.DrawMapRegions,
			SpriteRects: cfg.Debug.DrawSpriteRects,
		},
	}
	m.resize(width, height)
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.cfg.FPS)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionDebug:
		on := !(m.overlays.MapRegions || m.overlays.SpriteRects)
		m.overlays = Overlays{MapRegions: on, SpriteRects: on}
	case core.ActionNone:
	default:
		if m.cfg.Input.Keyboard {
			m.held[action] = holdFrames
		}
	}
	return m, nil
}

// handleTick runs one engine frame with the currently held actions.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.cfg.FPS)
	}

	m.eng.Input.Clear()
	for action, n := range m.held {
		m.eng.Input.Set(action)
		if n <= 1 {
			delete(m.held, action)
		} else {
			m.held[action] = n - 1
		}
	}

	m.eng.Frame(m.cfg.DeltaTime())
	return m, tickCmd(m.cfg.FPS)
}

func (m *Model) resize(width, height int) {
	w := core.Max(width, 1)
	h := core.Max(height-chromeLines, 1)
	if m.cfg.Window.FullScreen {
		w, h = core.Max(width, 1), core.Max(height, 1)
	}
	m.screen.Resize(w, h)
	m.eng.Viewport.Resize(w, h)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	Compose(m.screen, m.eng, m.overlays)

	var b strings.Builder
	b.WriteString(m.painter.render(m.screen))
	if m.cfg.Window.FullScreen {
		return b.String()
	}

	b.WriteString("\n")
	if m.cfg.Debug.DrawInfoPane {
		b.WriteString(m.infoPane())
	}
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) infoPane() string {
	c := m.eng.Counters()
	status := ""
	if m.paused {
		status = "  PAUSED"
	}
	info := fmt.Sprintf("%s  frame %d  entities %d  drawn %d  collisions %d  view %v%s",
		m.title, c.Frames, c.Entities, c.Rendered, c.Collisions, m.eng.Viewport.Dim, status)
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(info)
}

// Counters returns the engine statistics, for recording after the viewer exits.
func (m *Model) Counters() engine.Counters {
	return m.eng.Counters()
}

// Run starts the Bubble Tea program for eng and blocks until the user quits.
func Run(eng *engine.Engine, cfg config.EngineConfig, title string, width, height int) (engine.Counters, error) {
	model := NewModel(eng, cfg, title, width, height)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Input.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if _, err := p.Run(); err != nil {
		return model.Counters(), err
	}
	return model.Counters(), nil
}
