package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep reads a free-form value. An empty answer keeps the current one.
type TextStep struct {
	title string
	key   string
	input textinput.Model
}

func NewTextStep(title, key, current string) Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = current
	ti.Width = 50
	return &TextStep{title: title, key: key, input: ti}
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		// Prompts keep their trailing space, so the value is taken as typed.
		if val := s.input.Value(); val != "" {
			state.EnvVars[s.key] = val
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	return s.title + ":\n\n" + s.input.View() + "\n\n(press enter to keep the current value)\n"
}
