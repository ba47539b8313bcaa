package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrPolicyNotFound = errors.New("review policy file not found")
	ErrPolicyParsing  = errors.New("review policy parsing failed")
)

// ReviewPolicy is the optional YAML file that overrides the review tunables
// without touching the environment. Unset fields keep their configured value.
type ReviewPolicy struct {
	RiskThreshold      *int     `yaml:"risk_threshold"`
	AutoApprove        *bool    `yaml:"auto_approve"`
	ValidateAnchors    *bool    `yaml:"validate_anchors"`
	CustomInstructions []string `yaml:"custom_instructions"`
}

// LoadReviewPolicy loads and parses a review policy file.
func LoadReviewPolicy(path string) (*ReviewPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPolicyNotFound, path)
		}
		return nil, fmt.Errorf("failed to read review policy %s: %w", path, err)
	}

	policy := &ReviewPolicy{}
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPolicyParsing, err)
	}
	return policy, nil
}

// Apply overlays the policy onto the review configuration.
func (p *ReviewPolicy) Apply(cfg *ReviewConfig) {
	if p == nil || cfg == nil {
		return
	}
	if p.RiskThreshold != nil {
		cfg.RiskThreshold = *p.RiskThreshold
	}
	if p.AutoApprove != nil {
		cfg.AutoApprove = *p.AutoApprove
	}
	if p.ValidateAnchors != nil {
		cfg.ValidateAnchors = *p.ValidateAnchors
	}
	if len(p.CustomInstructions) > 0 {
		cfg.CustomInstructions = append([]string(nil), p.CustomInstructions...)
	}
}
