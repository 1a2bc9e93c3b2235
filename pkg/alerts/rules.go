// Package alerts decides whether a classified item warrants an alert and with
// what severity. The rule set is loaded from a single YAML source so keyword
// lists are never duplicated across components.
package alerts

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ohsono/sentiwatch/pkg/models"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Escalation lifts a finding above the rule's minimum severity when any of
// its conditions holds. Zero-valued conditions are disabled.
type Escalation struct {
	// To is the severity applied when a condition fires.
	To models.AlertSeverity `yaml:"to"`

	// MinMatches fires when at least this many distinct keywords matched.
	MinMatches int `yaml:"min_matches"`

	// NegativeConfidence fires on a negative verdict at or above this
	// confidence.
	NegativeConfidence float64 `yaml:"negative_confidence"`

	// NegativeLabel fires on any negative verdict.
	NegativeLabel bool `yaml:"negative_label"`

	// SecondPerson fires when the text addresses someone directly
	// ("you", "your", ...).
	SecondPerson bool `yaml:"second_person"`
}

func (e Escalation) enabled() bool {
	return e.MinMatches > 0 || e.NegativeConfidence > 0 || e.NegativeLabel || e.SecondPerson
}

// Rule is one alert kind: its keyword set, minimum severity, and escalation.
type Rule struct {
	Kind     models.AlertKind     `yaml:"kind"`
	Severity models.AlertSeverity `yaml:"severity"`
	Keywords []string             `yaml:"keywords"`
	Escalate Escalation           `yaml:"escalate"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules parses the rule set from path, or the embedded defaults when path
// is empty.
func LoadRules(path string) ([]Rule, error) {
	data := defaultRulesYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read alert rules: %w", err)
		}
		data = b
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse alert rules: %w", err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("alert rule set is empty")
	}

	for i, r := range rf.Rules {
		if r.Kind == "" {
			return nil, fmt.Errorf("rule %d: kind is required", i)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %q: at least one keyword required", r.Kind)
		}
		if r.Severity == "" {
			return nil, fmt.Errorf("rule %q: severity is required", r.Kind)
		}
		if r.Escalate.enabled() && r.Escalate.To == "" {
			return nil, fmt.Errorf("rule %q: escalation target severity is required", r.Kind)
		}
	}
	return rf.Rules, nil
}
