// Package ui renders `yasl build` progress: an animated Bubble Tea view on
// a terminal and plain status lines elsewhere.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"yasl/internal/buildpipeline"
)

const statusWidth = 10

type progressModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	prog    progress.Model
	items   []shaderItem
	index   map[string]int
	width   int
	failed  int
	done    bool
}

type shaderItem struct {
	name    string
	label   string
	stage   buildpipeline.Stage
	status  buildpipeline.Status
	message string
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model fed by events. The model
// quits when the channel is closed.
func NewProgressModel(title string, shaders []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 60

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   make([]shaderItem, len(shaders)),
		index:   make(map[string]int, len(shaders)),
		width:   80,
	}
	for i, name := range shaders {
		m.items[i] = shaderItem{name: name, label: "queued", status: buildpipeline.StatusQueued}
		m.index[name] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(buildpipeline.Event(msg)), m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// сборка не прерывается из UI, только ctrl+c
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(msg.Width-4, 10)
		}
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder
	header := m.spinner.View() + " " + m.title
	if m.done {
		header = m.title
		if m.failed > 0 {
			header += fmt.Sprintf(": %d failed", m.failed)
		}
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-6, 20)
	for _, it := range m.items {
		fmt.Fprintf(&b, "  %s %s", statusStyle(it.status).Render(fmt.Sprintf("%*s", statusWidth, it.label)), truncate(it.name, nameWidth))
		if it.message != "" {
			b.WriteString("  ")
			b.WriteString(lipgloss.NewStyle().Faint(true).Render(truncate(it.message, max(m.width-nameWidth-statusWidth-8, 10))))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.prog.ViewAs(1))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev buildpipeline.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	it := &m.items[idx]
	if it.status == buildpipeline.StatusError {
		return nil
	}
	if ev.Status == buildpipeline.StatusError && it.status != buildpipeline.StatusError {
		m.failed++
	}
	it.stage, it.status = ev.Stage, ev.Status
	it.label = label(ev.Stage, ev.Status)
	if ev.Err != nil {
		it.message = firstLine(ev.Err.Error())
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	var total float64
	for _, it := range m.items {
		total += stageWeight(it.stage, it.status)
	}
	return total / float64(len(m.items))
}

// stageWeight is the share of a shader's work finished once it reaches
// stage with status. Failed shaders count as finished.
func stageWeight(stage buildpipeline.Stage, status buildpipeline.Status) float64 {
	if status == buildpipeline.StatusError {
		return 1
	}
	var base, next float64
	switch stage {
	case buildpipeline.StageEmit:
		base, next = 0, 0.4
	case buildpipeline.StageWrite:
		base, next = 0.4, 0.5
	case buildpipeline.StageCompile:
		base, next = 0.5, 1
	}
	switch status {
	case buildpipeline.StatusDone:
		return next
	case buildpipeline.StatusWorking:
		return base
	}
	return 0
}

func label(stage buildpipeline.Stage, status buildpipeline.Status) string {
	switch status {
	case buildpipeline.StatusWorking:
		switch stage {
		case buildpipeline.StageEmit:
			return "emitting"
		case buildpipeline.StageWrite:
			return "writing"
		case buildpipeline.StageCompile:
			return "compiling"
		}
	case buildpipeline.StatusDone:
		if stage == buildpipeline.StageCompile {
			return "done"
		}
		return string(stage) + " ok"
	}
	return string(status)
}

func statusStyle(status buildpipeline.Status) lipgloss.Style {
	switch status {
	case buildpipeline.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case buildpipeline.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case buildpipeline.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 1 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "…")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
