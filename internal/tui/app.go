package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/viz"
)

const (
	headerRows  = 1
	footerRows  = 2
	historySize = 120
	minCanvasW  = 40
	minCanvasH  = 12
)

type tickMsg time.Time

type model struct {
	cfg    *config.Config
	world  *orbit.World
	canvas *viz.Canvas

	paused  bool
	pointer orbit.Point
	energy  []float64
	// satellite the energy history belongs to
	tracked int

	width  int
	height int
}

func newModel(cfg *config.Config) model {
	m := model{
		cfg:    cfg,
		world:  orbit.NewWorld(cfg.Params()),
		energy: make([]float64, 0, historySize),
		width:  80,
		height: 24,
	}
	m.resize()
	return m
}

func (m *model) resize() {
	w := max(m.width, minCanvasW)
	h := max(m.height-headerRows-footerRows, minCanvasH)
	m.canvas = viz.NewCanvas(w, h, m.world.Bounds())
}

func (m model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.Window.FPS)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return m.tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.world.Reset()
		m.energy = m.energy[:0]
		m.tracked = 0
	case "esc":
		m.world.Cancel()
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	row := msg.Y - headerRows
	if row < 0 || row >= m.canvas.Height || msg.X < 0 || msg.X >= m.canvas.Width {
		return
	}
	m.pointer = m.canvas.CellToWorld(msg.X, row)

	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.world.Press(m.pointer)
	case tea.MouseButtonRight:
		m.world.Cancel()
	}
}

func (m *model) step() {
	m.world.Tick()

	sats := m.world.Satellites()
	if len(sats) == 0 {
		m.energy = m.energy[:0]
		m.tracked = 0
		return
	}
	// energy of the most recent launch; a new series starts when it changes
	last := &sats[len(sats)-1]
	if last.ID != m.tracked {
		m.energy = m.energy[:0]
		m.tracked = last.ID
	}
	e := orbit.SpecificEnergy(last, m.world.Planet(), m.world.Params().G)
	m.energy = append(m.energy, e)
	if len(m.energy) > historySize {
		m.energy = m.energy[1:]
	}
}

func (m model) View() string {
	m.draw()

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')
	b.WriteString(m.canvas.String())
	b.WriteByte('\n')
	b.WriteString(m.footer())
	return b.String()
}

// draw renders the world onto the canvas in the GUI's order: guide line and
// marker, trails and satellites, planet last.
func (m model) draw() {
	c := m.canvas
	c.Clear()

	if marker, ok := m.world.Marker(); ok {
		c.Line(marker, m.pointer)
		c.Circle(marker, m.cfg.Render.ObjSize)
	}

	for _, s := range m.world.Satellites() {
		if s.TrailVisible() {
			c.Polyline(s.Trail)
		}
		c.Circle(s.Pos(), m.cfg.Render.SatelliteSize/2)
	}

	p := m.world.Planet()
	c.Circle(p.Pos(), p.Radius)
}

func (m model) header() string {
	status := viz.StatusRunning.Render("RUNNING")
	if m.paused {
		status = viz.StatusPaused.Render("PAUSED")
	}
	if m.world.Armed() {
		status += " " + viz.StatusArmed.Render("ARMED")
	}
	return viz.Title.Render("orbitsim") + "  " + status
}

func (m model) footer() string {
	st := m.world.Stats()
	line := strings.Join([]string{
		viz.Metric("live", fmt.Sprintf("%d", len(m.world.Satellites()))),
		viz.Metric("launched", fmt.Sprintf("%d", st.Launched)),
		viz.Metric("escaped", fmt.Sprintf("%d", st.Escaped)),
		viz.Metric("collided", fmt.Sprintf("%d", st.Collided)),
		viz.Metric("frame", fmt.Sprintf("%d", m.world.Frame())),
	}, "  ")

	spark := viz.Subtle.Render("energy ") + viz.Sparkline(m.energy, 30)
	hint := viz.KeyHint.Render("click: mark / launch  right-click/esc: cancel  space: pause  r: reset  q: quit")
	return line + "\n" + spark + "  " + hint
}

// Run starts the terminal front end and blocks until the user quits.
func Run(cfg *config.Config) error {
	viz.ApplyTheme(viz.GetTheme(cfg.Render.Theme))
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
