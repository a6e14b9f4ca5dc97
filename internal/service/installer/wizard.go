package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/tuskshell/internal/config"
)

const (
	keyProject   = "TUSK_PROJECT"
	keyPrompt    = "TUSK_PROMPT"
	keyHistory   = "TUSK_HISTORY"
	keyBackend   = "TUSK_STATE_BACKEND"
	keyFormat    = "TUSK_STATE_FORMAT"
	keyStatePath = "TUSK_STATE_PATH"
	keyDebug     = "TUSK_DEBUG"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Step represents a single step in the configuration wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps(vars map[string]string) []Step {
	return []Step{
		NewTextStep("Project name, used for the state cache directory", keyProject, vars[keyProject]),
		NewTextStep("Interactive prompt", keyPrompt, vars[keyPrompt]),
		NewChoiceStep("Keep command history", keyHistory, []string{"true", "false"}, vars[keyHistory]),
		NewChoiceStep("Where one-shot runs keep their state", keyBackend,
			[]string{config.BackendFile, config.BackendSQLite}, vars[keyBackend]),
		NewChoiceStep("State encoding", keyFormat,
			[]string{config.FormatJSON, config.FormatTOML}, vars[keyFormat]),
		NewFinalizationStep(),
	}
}

type nextMsg struct{}

// model walks the steps in order. A step returning nil from Update is done.
type model struct {
	steps    []Step
	current  int
	state    *InstallState
	quitting bool
	width    int
	height   int
}

func initialModel(defaults map[string]string) model {
	state := NewInstallState(defaults)
	return model{
		steps: getSteps(state.EnvVars),
		state: state,
	}
}

func (m model) done() bool {
	return m.current >= len(m.steps)
}

func (m model) Init() tea.Cmd {
	if m.done() {
		return nil
	}
	return m.steps[0].Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.quitting || m.done() {
		return m, tea.Quit
	}

	next, cmd := m.steps[m.current].Update(msg, m.state, m.width, m.height)
	if next != nil {
		m.steps[m.current] = next
		return m, cmd
	}
	return m.advance()
}

func (m model) advance() (tea.Model, tea.Cmd) {
	m.current++
	if m.done() {
		return m, tea.Quit
	}
	return m, m.steps[m.current].Init()
}

func (m model) View() string {
	switch {
	case m.quitting:
		return "Configuration cancelled.\n"
	case m.done():
		return "Configuration complete!\n"
	}

	header := titleStyle.Render("Configuring tusk") +
		hintStyle.Render(fmt.Sprintf("  %d/%d", m.current+1, len(m.steps)))
	return header + "\n\n" + m.steps[m.current].View(m.state)
}

// RunWizard starts the TUI seeded with defaults and returns the chosen
// TUSK_* variables.
func RunWizard(defaults map[string]string) (map[string]string, error) {
	final, err := tea.NewProgram(initialModel(defaults), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run wizard: %w", err)
	}

	if m := final.(model); !m.quitting {
		return m.state.EnvVars, nil
	}
	return nil, fmt.Errorf("configuration interrupted")
}
