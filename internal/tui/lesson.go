package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursegen/internal/stream"
)

// pollInterval is how often the view samples the controller's observables.
const pollInterval = 50 * time.Millisecond

type pollMsg time.Time

// startedMsg carries the result of Controller.Start.
type startedMsg struct {
	err error
}

// lessonModel renders one streaming lesson generation: a spinner while the
// stream connects, typewriter-paced content while it flows, and the final
// document with its read-time estimate once the controller finishes.
type lessonModel struct {
	ctrl   *stream.Controller
	params stream.StartParams

	spin     spinner.Model
	width    int
	height   int
	started  bool
	finished bool
	startErr error
}

func newLessonModel(ctrl *stream.Controller, p stream.StartParams) lessonModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primary)

	return lessonModel{
		ctrl:   ctrl,
		params: p,
		spin:   sp,
	}
}

func (m lessonModel) Init() tea.Cmd {
	ctrl, p := m.ctrl, m.params
	start := func() tea.Msg {
		return startedMsg{err: ctrl.Start(context.Background(), p)}
	}
	return tea.Batch(start, m.spin.Tick, pollCmd())
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m lessonModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.ctrl.Stop()
			return m, tea.Quit
		}
		if m.finished {
			return m, tea.Quit
		}
		return m, nil

	case startedMsg:
		if msg.err != nil {
			m.startErr = msg.err
			m.finished = true
			return m, nil
		}
		m.started = true
		return m, nil

	case pollMsg:
		if m.started && !m.ctrl.IsLoading() {
			m.finished = true
			return m, nil
		}
		return m, pollCmd()

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m lessonModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := headerStyle.Width(m.width).Render(m.headerLine())
	footer := footerStyle.Width(m.width).Render(m.footerLine())

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	body := m.renderBody(contentHeight)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
	return v
}

func (m lessonModel) headerLine() string {
	title := m.params.SubtopicTitle
	if m.finished {
		if res := m.ctrl.Data(); res != nil && res.Title != "" {
			title = res.Title
		}
	}
	return titleStyle.Render(title)
}

func (m lessonModel) footerLine() string {
	if !m.finished {
		return hintStyle.Render("Q Quit")
	}

	var parts []string
	if res := m.ctrl.Data(); res != nil && res.EstimatedReadTimeMin > 0 {
		parts = append(parts, successStyle.Render(fmt.Sprintf("~%d min read", res.EstimatedReadTimeMin)))
	}
	if warn := m.ctrl.PersistWarning(); warn != nil {
		parts = append(parts, errorStyle.Render("not saved: "+warn.Error()))
	}
	parts = append(parts, hintStyle.Render("Press any key to exit"))
	return strings.Join(parts, "   ")
}

func (m lessonModel) renderBody(height int) string {
	width := m.width - 4
	if width < 1 {
		width = 1
	}
	pad := lipgloss.NewStyle().Padding(1, 2).Width(m.width)

	if err := m.sessionErr(); err != nil {
		return pad.Height(height).Render(
			errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	}

	content := m.ctrl.Content()
	if content == "" {
		if m.finished {
			// Recovery exhausted every fallback; nothing coherent arrived.
			return pad.Height(height).Render(
				errorStyle.Render("The stream produced no usable lesson content."))
		}
		return pad.Height(height).Render(
			m.spin.View() + hintStyle.Render(" Preparing your lesson..."))
	}

	wrapped := bodyStyle.Width(width).Render(content)
	return pad.Height(height).Render(tailLines(wrapped, height-2))
}

func (m lessonModel) sessionErr() error {
	if m.startErr != nil {
		return m.startErr
	}
	return m.ctrl.Err()
}

// tailLines keeps the last n lines so the view follows the typewriter as
// content outgrows the screen.
func tailLines(s string, n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

// Run opens the full-screen lesson viewer and blocks until the user exits.
func Run(ctrl *stream.Controller, p stream.StartParams) error {
	prog := tea.NewProgram(newLessonModel(ctrl, p))
	_, err := prog.Run()
	return err
}
