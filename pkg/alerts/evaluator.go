package alerts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ohsono/sentiwatch/pkg/models"
)

// secondPersonPattern detects direct address of another person.
var secondPersonPattern = regexp.MustCompile(`(?i)\b(you|your|yours|yourself|you're|u)\b`)

// Finding is one fired rule: the kind, final severity, and which keywords
// matched. The caller attaches it to a stored classification.
type Finding struct {
	Kind     models.AlertKind
	Severity models.AlertSeverity
	Keywords []string
}

type compiledRule struct {
	rule     Rule
	patterns []*regexp.Regexp
}

// Evaluator matches classified text against the loaded rule set. Safe for
// concurrent use; all state is immutable after construction.
type Evaluator struct {
	rules []compiledRule
}

// NewEvaluator compiles the rule set into word-boundary matchers.
func NewEvaluator(rules []Rule) (*Evaluator, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{rule: r, patterns: make([]*regexp.Regexp, 0, len(r.Keywords))}
		for _, kw := range r.Keywords {
			p, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("rule %q: bad keyword %q: %w", r.Kind, kw, err)
			}
			cr.patterns = append(cr.patterns, p)
		}
		compiled = append(compiled, cr)
	}
	return &Evaluator{rules: compiled}, nil
}

// Evaluate returns one finding per rule that fires. Multiple kinds may fire
// for the same text; an empty slice means no alert is warranted.
func (e *Evaluator) Evaluate(text string, verdict models.SentimentVerdict) []Finding {
	var findings []Finding
	for _, cr := range e.rules {
		var matched []string
		for i, p := range cr.patterns {
			if p.MatchString(text) {
				matched = append(matched, cr.rule.Keywords[i])
			}
		}
		if len(matched) == 0 {
			continue
		}

		severity := cr.rule.Severity
		if esc := cr.rule.Escalate; esc.enabled() && escalates(esc, text, verdict, len(matched)) {
			severity = maxSeverity(severity, esc.To)
		}

		findings = append(findings, Finding{
			Kind:     cr.rule.Kind,
			Severity: severity,
			Keywords: matched,
		})
	}
	return findings
}

// escalates reports whether any escalation condition holds.
func escalates(esc Escalation, text string, verdict models.SentimentVerdict, matches int) bool {
	if esc.MinMatches > 0 && matches >= esc.MinMatches {
		return true
	}
	if esc.NegativeConfidence > 0 &&
		verdict.Label == models.LabelNegative &&
		verdict.Confidence >= esc.NegativeConfidence {
		return true
	}
	if esc.NegativeLabel && verdict.Label == models.LabelNegative {
		return true
	}
	if esc.SecondPerson && secondPersonPattern.MatchString(text) {
		return true
	}
	return false
}

var severityRank = map[models.AlertSeverity]int{
	models.SeverityLow:    0,
	models.SeverityMedium: 1,
	models.SeverityHigh:   2,
}

func maxSeverity(a, b models.AlertSeverity) models.AlertSeverity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}
