package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pdelab/internal/sim"
)

const (
	width  = 80
	height = 22
)

type TickMsg time.Time

// Model animates one simulation in the terminal. It pulls a field
// snapshot once per frame, between Advance calls, and never touches
// the buffers mid-step.
type Model struct {
	build         func() (*sim.Simulation, error)
	s             *sim.Simulation
	label         string
	canvas        *Canvas
	lo, hi        float64
	running       bool
	diverged      bool
	stepsPerFrame int
	showHelp      bool
	err           error
}

// NewModel builds the simulation via the supplied factory; reset simply
// builds a fresh one, since construction is deterministic.
func NewModel(build func() (*sim.Simulation, error), label string) Model {
	m := Model{
		build:         build,
		label:         label,
		canvas:        NewCanvas(width, height),
		running:       true,
		stepsPerFrame: 4,
	}
	m.s, m.err = build()
	if m.err == nil {
		m.rescale()
	}
	return m
}

// rescale fixes the plot range from the current field with headroom, so
// the curve does not jump frame to frame.
func (m *Model) rescale() {
	u := m.s.Field()
	lo, hi := u.Min(), u.Max()
	pad := 0.15 * (hi - lo)
	if pad == 0 {
		pad = 0.5
	}
	m.lo, m.hi = lo-pad, hi+pad
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.s, m.err = m.build()
			m.diverged = false
			if m.err == nil {
				m.rescale()
			}
		case "+", "=":
			if m.stepsPerFrame < 64 {
				m.stepsPerFrame *= 2
			}
		case "-":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.err == nil && m.running && !m.diverged {
			for i := 0; i < m.stepsPerFrame; i++ {
				m.s.Advance()
			}
			if !m.s.Field().IsValid() {
				m.diverged = true
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	u := m.s.Field()
	m.canvas.Clear()
	if !m.diverged {
		m.canvas.PlotField(u, m.lo, m.hi)
	}

	header := headerStyle.Render(fmt.Sprintf("pdelab  %s", m.label))

	status := statusRunning.Render("running")
	if m.diverged {
		status = divergedStyle.Render("diverged (scheme is unstable)")
	} else if !m.running {
		status = statusPaused.Render("paused")
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("t")+valueStyle.Render(fmt.Sprintf("%.4f", m.s.Time())),
		labelStyle.Render("step")+valueStyle.Render(fmt.Sprintf("%d", m.s.StepCount())),
		labelStyle.Render("dt")+valueStyle.Render(fmt.Sprintf("%.3g", m.s.Dt())),
		labelStyle.Render("umin")+valueStyle.Render(fmt.Sprintf("%.4f", u.Min())),
		labelStyle.Render("umax")+valueStyle.Render(fmt.Sprintf("%.4f", u.Max())),
		labelStyle.Render("sum u")+valueStyle.Render(fmt.Sprintf("%.6f", u.Sum())),
		labelStyle.Render("steps/frame")+valueStyle.Render(fmt.Sprintf("%d", m.stepsPerFrame)),
		"",
		status,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		stats,
	)

	help := helpStyle.Render("space pause  r reset  +/- speed  ? help  q quit")
	if m.showHelp {
		help = helpStyle.Render(
			"space  pause/resume\n" +
				"r      rebuild from the initial condition\n" +
				"+/-    steps advanced per frame\n" +
				"q      quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help) + "\n"
}
