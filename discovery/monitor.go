package discovery

import "github.com/pressidio/imagescout/core"

// EscalationMonitor provides hooks to observe the escalation process.
// Implement this interface to track intermediate steps during discovery.
type EscalationMonitor interface {
	Start(articleID, title string)
	LevelStarted(level core.SearchLevel, prompt string)
	ProviderMiss(level core.SearchLevel, err error)
	CandidatesParsed(level core.SearchLevel, count int)
	LevelScored(level core.SearchLevel, best *core.ImageCandidate)
	LevelAccepted(level core.SearchLevel, image *core.ImageCandidate)
	Finish(outcome *core.EscalationOutcome)
}

// noopMonitor is a no-op implementation of EscalationMonitor
type noopMonitor struct{}

var _ EscalationMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string)                                      {}
func (n *noopMonitor) LevelStarted(_ core.SearchLevel, _ string)              {}
func (n *noopMonitor) ProviderMiss(_ core.SearchLevel, _ error)               {}
func (n *noopMonitor) CandidatesParsed(_ core.SearchLevel, _ int)             {}
func (n *noopMonitor) LevelScored(_ core.SearchLevel, _ *core.ImageCandidate) {}
func (n *noopMonitor) LevelAccepted(_ core.SearchLevel, _ *core.ImageCandidate) {
}
func (n *noopMonitor) Finish(_ *core.EscalationOutcome) {}
