package progress

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"go.codegraph.dev/jsoncodegen/pipeline"
)

var (
	barDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
)

const barWidth = 30

// closedMsg signals that the event channel has been closed, meaning the
// pipeline run finished (successfully or not).
type closedMsg struct{}

// model is the bubbletea model driving the progress view. One bar is shown
// per pipeline.Stage, sized by pipeline.StageShare and filled in as events
// arrive.
type model struct {
	events <-chan pipeline.StageEvent
	nodes  map[pipeline.Stage]int
	done   map[pipeline.Stage]bool
	order  []pipeline.Stage
	closed bool
}

func newModel(events <-chan pipeline.StageEvent) *model {
	return &model{
		events: events,
		nodes:  make(map[pipeline.Stage]int),
		done:   make(map[pipeline.Stage]bool),
		order:  pipeline.Stages(),
	}
}

// waitForEvent returns a tea.Cmd that blocks on the event channel, mirroring
// frameStream.readFrame's blocking-channel-read-as-Cmd shape.
func waitForEvent(events <-chan pipeline.StageEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return closedMsg{}
		}

		return ev
	}
}

func (m *model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case pipeline.StageEvent:
		m.done[msg.Stage] = true
		m.nodes[msg.Stage] = msg.Nodes

		if msg.Stage == pipeline.StageEmitted {
			m.closed = true

			return m, tea.Quit
		}

		return m, waitForEvent(m.events)

	case closedMsg:
		m.closed = true

		return m, tea.Quit
	}

	return m, nil
}

func (m *model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b []byte

	for _, stage := range m.order {
		b = append(b, renderBar(stage, m.done[stage], m.nodes[stage])...)
		b = append(b, '\n')
	}

	return string(b)
}

func renderBar(stage pipeline.Stage, done bool, nodes int) string {
	filled := int(pipeline.StageShare(stage) * barWidth)
	if filled < 1 {
		filled = 1
	}

	bar := barPendingStyle.Render(strings.Repeat("░", barWidth))
	if done {
		bar = barDoneStyle.Render(strings.Repeat("█", filled)) + barPendingStyle.Render(strings.Repeat("░", barWidth-filled))
	}

	label := labelStyle.Render(stage.String())

	if done && nodes > 0 {
		return label + " " + bar + " (" + strconv.Itoa(nodes) + ")"
	}

	return label + " " + bar
}
