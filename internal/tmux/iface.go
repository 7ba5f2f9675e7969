package tmux

// Ops abstracts the tmux operations the sweep and CLI layers use, so
// tests can substitute fakes.
type Ops interface {
	ListAgentPanes() ([]Pane, error)
	CapturePane(target string, lines int) (string, error)
	SendKeys(target, keys string) error
	SpawnSession(name, dir, agent, desc string, command []string) (string, error)
	KillSession(target string) error
	PaneWorkdir(target string) (string, error)
}

// Real delegates to the package-level functions.
type Real struct{}

func (Real) ListAgentPanes() ([]Pane, error) {
	return ListAgentPanes()
}

func (Real) CapturePane(target string, lines int) (string, error) {
	return CapturePane(target, lines)
}

func (Real) SendKeys(target, keys string) error {
	return SendKeys(target, keys)
}

func (Real) SpawnSession(name, dir, agent, desc string, command []string) (string, error) {
	return SpawnSession(name, dir, agent, desc, command)
}

func (Real) KillSession(target string) error {
	return KillSession(target)
}

func (Real) PaneWorkdir(target string) (string, error) {
	return PaneWorkdir(target)
}
