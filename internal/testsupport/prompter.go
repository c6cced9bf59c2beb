package testsupport

import (
	"sync"

	"mediagrab/internal/prompt"
)

// ScriptedPrompter replays canned answers in order. Once the script is
// exhausted every further question returns prompt.ErrInterrupted, which ends
// a dispatcher session the same way Ctrl-C would.
type ScriptedPrompter struct {
	mu      sync.Mutex
	answers []string
	asked   []string
}

// NewScriptedPrompter returns a prompter that answers with the given lines.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: append([]string(nil), answers...)}
}

// Ask implements prompt.Prompter.
func (p *ScriptedPrompter) Ask(label string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", prompt.ErrInterrupted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// Asked returns every label the prompter was asked, in order.
func (p *ScriptedPrompter) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}
