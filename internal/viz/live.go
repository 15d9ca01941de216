package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bouncelab/internal/engine"
	"github.com/san-kum/bouncelab/internal/world"
)

const (
	historyCapacity = 600
	statsWidth      = 42

	// canvasStyle padding, needed to translate mouse cells into canvas
	// sub-pixels.
	padTop  = 1
	padLeft = 2
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(padTop, padLeft)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the engine from the terminal: each tick advances one
// frame, mouse motion feeds the repulsion pointer, and terminal resizes
// become viewport resizes. One canvas sub-pixel is one world unit.
type Model struct {
	eng    *engine.Engine
	fps    int
	canvas *Canvas
	snap   world.Snapshot

	running  bool
	showHelp bool

	keHistory   []float64
	collHistory []float64
}

func NewModel(eng *engine.Engine, fps int) Model {
	snap := eng.Snapshot()
	cols := int(snap.Width) / 2
	rows := int(snap.Height) / 4

	return Model{
		eng:         eng,
		fps:         fps,
		canvas:      NewCanvas(cols, rows),
		snap:        snap,
		running:     true,
		keHistory:   make([]float64, 0, historyCapacity),
		collHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.eng.Reset()
			m.keHistory = m.keHistory[:0]
			m.collHistory = m.collHistory[:0]
		case "c":
			m.eng.ClearPointer()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.MouseMsg:
		wx := (msg.X - padLeft) * 2
		wy := (msg.Y - padTop) * 4
		if wx >= 0 && wy >= 0 && wx < m.canvas.Width*2 && wy < m.canvas.Height*4 {
			m.eng.SetPointer(float64(wx), float64(wy))
		} else {
			m.eng.ClearPointer()
		}

	case tea.WindowSizeMsg:
		cols := msg.Width - statsWidth - 2*padLeft - 2
		rows := msg.Height - 2*padTop - 1
		if cols < 20 {
			cols = 20
		}
		if rows < 10 {
			rows = 10
		}
		m.canvas = NewCanvas(cols, rows)
		m.eng.Resize(float64(cols*2), float64(rows*4))
		m.snap = m.eng.Snapshot()

	case TickMsg:
		if m.running {
			m.snap = m.eng.Advance()
			m.keHistory = append(m.keHistory, m.snap.KineticEnergy())
			if len(m.keHistory) > historyCapacity {
				m.keHistory = m.keHistory[1:]
			}
			m.collHistory = append(m.collHistory, float64(m.snap.Collisions))
			if len(m.collHistory) > historyCapacity {
				m.collHistory = m.collHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// draw paints the current snapshot onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	for _, v := range m.snap.Bodies {
		m.canvas.FillCircle(int(v.X), int(v.Y), int(v.R))
	}

	if m.snap.HasPointer {
		px, py := int(m.snap.PointerX), int(m.snap.PointerY)
		m.canvas.DrawLine(px-4, py, px+4, py)
		m.canvas.DrawLine(px, py-4, px, py+4)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()

	canvasView := canvasStyle.Foreground(CurrentTheme.Canvas).Render(m.canvas.String())
	headerStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Header).Bold(true).MarginBottom(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("BOUNCELAB") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.keHistory) > 1 {
		chart := asciigraph.Plot(m.keHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Frame)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.snap.Bodies))) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f", m.snap.KineticEnergy())) + "\n")
	s.WriteString(labelStyle.Render("Peak speed") + valueStyle.Render(fmt.Sprintf("%.2f", m.snap.PeakSpeed())) + "\n")
	s.WriteString(labelStyle.Render("Collisions") + valueStyle.Render(fmt.Sprintf("%d", m.snap.Collisions)) + "\n")
	s.WriteString(labelStyle.Render("Wall hits") + valueStyle.Render(fmt.Sprintf("%d", m.snap.WallHits)) + "\n")

	if m.snap.HasPointer {
		s.WriteString(labelStyle.Render("Pointer") + valueStyle.Render(fmt.Sprintf("%.0f, %.0f", m.snap.PointerX, m.snap.PointerY)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Pointer") + Subtle.Render("off") + "\n")
	}

	if len(m.collHistory) > 1 {
		s.WriteString("\n" + labelStyle.Render("Impacts") + SparklineChart(m.collHistory, 24) + "\n")
	}

	s.WriteString("\n" + Separator(30) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit\nT:Theme  C:Pointer-off ?:Help\nMouse: repel bodies"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset (respawn bodies)   ║
║  C        - Clear pointer            ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
║  Mouse    - Move to repel bodies     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
