// Package tui is the interactive terminal analyzer: adjust draft and
// KG and watch the GZ curve and its metrics re-render on every change.
// Each keypress triggers one pure recomputation; there is no background
// state to reconcile.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gzlab/internal/stability"
	"github.com/san-kum/gzlab/internal/store"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const step = 0.5 // draft and KG adjustment step, meters

type Model struct {
	computer *stability.Computer
	vessel   string
	runs     *store.Store

	draft float64
	kg    float64

	estimators []stability.GMEstimator
	gmIdx      int

	curve   *stability.Curve
	summary *stability.Summary
	problem string
	status  string

	width  int
	height int
}

func New(c *stability.Computer, vessel string, runs *store.Store) Model {
	env := c.Envelope()
	m := Model{
		computer:   c,
		vessel:     vessel,
		runs:       runs,
		draft:      env.MinDraft + (env.MaxDraft-env.MinDraft)/2,
		kg:         env.DefaultKG,
		estimators: []stability.GMEstimator{stability.SlopeGM{}, stability.FormGM{}},
		width:      80,
		height:     24,
	}
	m.recompute()
	return m
}

// Run starts the analyzer and blocks until the user quits.
func Run(c *stability.Computer, vessel string, runs *store.Store) error {
	p := tea.NewProgram(New(c, vessel, runs))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	env := m.computer.Envelope()
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.draft = clamp(m.draft-step, env.MinDraft, env.MaxDraft)
		m.recompute()
	case "right", "l":
		m.draft = clamp(m.draft+step, env.MinDraft, env.MaxDraft)
		m.recompute()
	case "up", "k":
		m.kg = clamp(m.kg+step, env.MinKG, env.MaxKG)
		m.recompute()
	case "down", "j":
		m.kg = clamp(m.kg-step, env.MinKG, env.MaxKG)
		m.recompute()
	case "g":
		m.gmIdx = (m.gmIdx + 1) % len(m.estimators)
		m.recompute()
	case "s":
		m.saveRun()
	}
	return m, nil
}

// recompute rebuilds curve and summary from the current inputs. Range
// failures become a banner, never a crash: the user just picks other
// inputs.
func (m *Model) recompute() {
	m.problem = ""
	m.curve = nil
	m.summary = nil

	curve, err := m.computer.Curve(m.draft, m.kg)
	if err != nil {
		m.problem = err.Error()
		return
	}
	sum, err := stability.Summarize(curve, m.draft, m.kg, m.estimators[m.gmIdx])
	if err != nil {
		m.problem = err.Error()
		return
	}
	m.curve = curve
	m.summary = sum
}

func (m *Model) saveRun() {
	if m.runs == nil || m.curve == nil || m.summary == nil {
		m.status = "nothing to save"
		return
	}
	if err := m.runs.Init(); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	runID, err := m.runs.Save(m.vessel, m.draft, m.kg, m.curve, m.summary)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved run %s", runID)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf("gz curve analyzer — %s", m.vessel)))
	b.WriteString("\n\n")

	b.WriteString(white.Render(fmt.Sprintf("draft %5.1f m    kg %5.1f m    gm method %s",
		m.draft, m.kg, m.estimators[m.gmIdx].Name())))
	b.WriteString("\n\n")

	if m.problem != "" {
		b.WriteString(yellow.Render("! " + m.problem))
		b.WriteString("\n\n")
	}

	if m.curve != nil {
		plotWidth := m.width - 12
		if plotWidth > 70 {
			plotWidth = 70
		}
		if plotWidth < 20 {
			plotWidth = 20
		}
		graph := asciigraph.Plot(m.curve.GZValues(),
			asciigraph.Height(10),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("gz (m) vs heel angle"),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}

	if m.summary != nil {
		b.WriteString(dim.Render("displacement  "))
		b.WriteString(white.Render(fmt.Sprintf("%9.0f t", m.summary.Displacement)))
		b.WriteString("\n")
		b.WriteString(dim.Render("max gz        "))
		b.WriteString(white.Render(fmt.Sprintf("%9.3f m at %.0f°", m.summary.MaxGZ, m.summary.AngleOfMaxGZ)))
		b.WriteString("\n")
		b.WriteString(dim.Render("gm            "))
		b.WriteString(white.Render(fmt.Sprintf("%9.3f m", m.summary.GM)))
		b.WriteString("\n\n")

		if m.summary.Stable() {
			b.WriteString(green.Render("positive initial stability"))
		} else {
			b.WriteString(red.Render("negative gm — vessel is unstable"))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(yellow.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("←/→ draft  ↑/↓ kg  g gm method  s save  q quit"))
	b.WriteString("\n")

	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
