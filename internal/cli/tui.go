package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/anchorage/pkg/errors"
	"github.com/matzehuels/anchorage/pkg/scenario"
)

var (
	stepCurrentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stepDoneStyle    = lipgloss.NewStyle().Foreground(colorGray)
	stepPendingStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StepModel - Interactive scenario stepper
// =============================================================================

// StepModel is the bubbletea model for stepping through a scenario. It shows
// the step list, the outcome of the last step and the node map of the
// inspected element.
type StepModel struct {
	Playback *scenario.Playback
	Results  []scenario.StepResult
	Names    []string
	Inspect  int
	Err      error

	ctx context.Context
}

// NewStepModel creates a stepper over pb. The first element with a layout
// step is inspected initially.
func NewStepModel(ctx context.Context, pb *scenario.Playback) StepModel {
	m := StepModel{Playback: pb, Names: pb.Names(), ctx: ctx}
	for _, st := range pb.Scenario().Steps {
		if st.Action == scenario.ActionLayout {
			for i, n := range m.Names {
				if n == st.View {
					m.Inspect = i
				}
			}
			break
		}
	}
	return m
}

func (m StepModel) Init() tea.Cmd {
	return nil
}

func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "n", " ", "enter":
		m = m.step()
	case "r":
		for !m.Playback.Done() && m.Err == nil {
			m = m.step()
		}
	case "tab", "right", "l":
		if len(m.Names) > 0 {
			m.Inspect = (m.Inspect + 1) % len(m.Names)
		}
	case "shift+tab", "left", "h":
		if len(m.Names) > 0 {
			m.Inspect = (m.Inspect + len(m.Names) - 1) % len(m.Names)
		}
	}
	return m, nil
}

func (m StepModel) step() StepModel {
	if m.Playback.Done() {
		return m
	}
	res, err := m.Playback.Next(m.ctx)
	if err != nil {
		m.Err = err
		return m
	}
	m.Results = append(m.Results, res)
	if res.View != "" {
		for i, n := range m.Names {
			if n == res.View {
				m.Inspect = i
			}
		}
	}
	return m
}

func (m StepModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Playback.Scenario().Name))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.Playback.Traits().String()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("n step  r run all  tab inspect next  q quit"))
	b.WriteString("\n\n")

	steps := m.Playback.Scenario().Steps
	for i, st := range steps {
		line := fmt.Sprintf("%2d %-10s %s", i+1, st.Action, st.View)
		switch {
		case i < len(m.Results):
			res := m.Results[i]
			if res.Failed() {
				b.WriteString(styleIconError.Render(iconError) + " " + stepDoneStyle.Render(line) + "  " + StyleError.Render(errors.UserMessage(res.Err)))
			} else {
				b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + stepDoneStyle.Render(line) + "  " + formatChanges(res.Activated, res.Deactivated))
			}
		case i == m.Playback.Position():
			b.WriteString(stepCurrentStyle.Render("▸ " + line))
		default:
			b.WriteString(stepPendingStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.Names) > 0 {
		name := m.Names[m.Inspect]
		b.WriteString("\n")
		b.WriteString(StyleTitle.Render(name))
		b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Inspect+1, len(m.Names))))
		b.WriteString("\n")
		if rows := m.Playback.Nodes(name); len(rows) > 0 {
			b.WriteString(renderNodeTable(rows))
		} else {
			b.WriteString(StyleDim.Render("  no declarations"))
		}
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n" + StyleError.Render(m.Err.Error()) + "\n")
	} else if m.Playback.Done() {
		b.WriteString("\n" + StyleSuccess.Render(fmt.Sprintf("done · %d solves", m.Playback.Host().Solves())) + "\n")
	}
	return b.String()
}
