package installer

// InstallState collects TUSK_* variables as the wizard advances.
type InstallState struct {
	EnvVars map[string]string

	// backend the wizard started from
	backend string
}

func NewInstallState(defaults map[string]string) *InstallState {
	vars := make(map[string]string, len(defaults))
	for k, v := range defaults {
		vars[k] = v
	}
	return &InstallState{EnvVars: vars, backend: vars[keyBackend]}
}
