package llm

import "strings"

// SummaryData is rendered into the summary prompt.
type SummaryData struct {
	Diff string
}

// CritiqueData is rendered into the per-file critique prompt.
type CritiqueData struct {
	Path         string
	Patch        string
	Instructions []string
}

// ReviewPrompts renders the prompts of the review pipeline for one provider.
type ReviewPrompts struct {
	manager  *PromptManager
	provider ModelProvider
}

// NewReviewPrompts binds the prompt manager to the configured provider.
func NewReviewPrompts(manager *PromptManager, provider string) *ReviewPrompts {
	if provider == "" {
		provider = string(DefaultProvider)
	}
	return &ReviewPrompts{manager: manager, provider: ModelProvider(provider)}
}

// System returns the reviewer persona.
func (p *ReviewPrompts) System() (string, error) {
	s, err := p.manager.Render(SystemPrompt, p.provider, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Summary asks for a plain-English summary of the whole diff bundle.
func (p *ReviewPrompts) Summary(diff string) (string, error) {
	return p.manager.Render(SummaryPrompt, p.provider, SummaryData{Diff: diff})
}

// Critique asks for "Line N: comment" findings on a single file.
func (p *ReviewPrompts) Critique(path, patch string, instructions []string) (string, error) {
	return p.manager.Render(CritiquePrompt, p.provider, CritiqueData{
		Path:         path,
		Patch:        patch,
		Instructions: instructions,
	})
}
