package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep reconciles values that depend on each other.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// An explicit state path belongs to the backend it was written for.
	if state.EnvVars[keyBackend] != state.backend {
		delete(state.EnvVars, keyStatePath)
	}

	if state.EnvVars[keyDebug] == "" {
		state.EnvVars[keyDebug] = "false"
	}
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
