package alerts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	rules, err := LoadRules("")
	require.NoError(t, err)
	e, err := NewEvaluator(rules)
	require.NoError(t, err)
	return e
}

func negativeVerdict(conf float64) models.SentimentVerdict {
	return models.SentimentVerdict{Label: models.LabelNegative, Confidence: conf, Compound: -conf}
}

func TestMentalHealthAnyMatchIsHigh(t *testing.T) {
	e := newTestEvaluator(t)

	findings := e.Evaluate("I feel hopeless and worthless", negativeVerdict(0.9))
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, models.AlertKindMentalHealth, f.Kind)
	assert.Equal(t, models.SeverityHigh, f.Severity)
	assert.Subset(t, f.Keywords, []string{"hopeless", "worthless"})
}

func TestNoRuleFiresNoFindings(t *testing.T) {
	e := newTestEvaluator(t)

	findings := e.Evaluate("great lecture today, loved the examples", models.SentimentVerdict{Label: models.LabelPositive, Confidence: 0.9})
	assert.Empty(t, findings)
}

func TestMatchingIsCaseInsensitiveWordBoundary(t *testing.T) {
	e := newTestEvaluator(t)

	findings := e.Evaluate("HOPELESS situation", negativeVerdict(0.5))
	require.Len(t, findings, 1)
	assert.Equal(t, models.AlertKindMentalHealth, findings[0].Kind)

	// Substring inside a longer word must not match.
	findings = e.Evaluate("the unfailingly cheerful tour guide", models.SentimentVerdict{Label: models.LabelPositive})
	assert.Empty(t, findings)
}

func TestStressEscalatesOnTwoMatches(t *testing.T) {
	e := newTestEvaluator(t)

	single := e.Evaluate("so overwhelmed right now", negativeVerdict(0.5))
	require.Len(t, single, 1)
	assert.Equal(t, models.SeverityMedium, single[0].Severity)

	double := e.Evaluate("overwhelmed and heading for a breakdown", negativeVerdict(0.5))
	require.Len(t, double, 1)
	assert.Equal(t, models.SeverityHigh, double[0].Severity)
	assert.Len(t, double[0].Keywords, 2)
}

func TestStressEscalatesOnConfidentNegative(t *testing.T) {
	e := newTestEvaluator(t)

	findings := e.Evaluate("completely overwhelmed by this quarter", negativeVerdict(0.85))
	require.Len(t, findings, 1)
	assert.Equal(t, models.SeverityHigh, findings[0].Severity)
}

func TestAcademicEscalatesOnNegativeLabel(t *testing.T) {
	e := newTestEvaluator(t)

	neutral := e.Evaluate("half the class is failing apparently", models.SentimentVerdict{Label: models.LabelNeutral})
	require.Len(t, neutral, 1)
	assert.Equal(t, models.AlertKindAcademic, neutral[0].Kind)
	assert.Equal(t, models.SeverityLow, neutral[0].Severity)

	negative := e.Evaluate("I'm failing everything", negativeVerdict(0.6))
	require.Len(t, negative, 1)
	assert.Equal(t, models.SeverityMedium, negative[0].Severity)
}

func TestHarassmentEscalatesOnSecondPerson(t *testing.T) {
	e := newTestEvaluator(t)

	thirdPerson := e.Evaluate("someone got harassed at the rec center", negativeVerdict(0.5))
	require.Len(t, thirdPerson, 1)
	assert.Equal(t, models.SeverityMedium, thirdPerson[0].Severity)

	secondPerson := e.Evaluate("you will be harassed if you post there", negativeVerdict(0.5))
	require.Len(t, secondPerson, 1)
	assert.Equal(t, models.SeverityHigh, secondPerson[0].Severity)
}

func TestMultipleKindsFireIndependently(t *testing.T) {
	e := newTestEvaluator(t)

	findings := e.Evaluate("hopeless, overwhelmed, and failing my classes", negativeVerdict(0.9))
	require.Len(t, findings, 3)

	kinds := make(map[models.AlertKind]bool)
	for _, f := range findings {
		kinds[f.Kind] = true
	}
	assert.True(t, kinds[models.AlertKindMentalHealth])
	assert.True(t, kinds[models.AlertKindStress])
	assert.True(t, kinds[models.AlertKindAcademic])
}

func TestLoadRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	custom := `rules:
  - kind: stress
    severity: low
    keywords: [deadline]
`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, models.AlertKindStress, rules[0].Kind)
	assert.Equal(t, models.SeverityLow, rules[0].Severity)
}

func TestLoadRulesRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"empty rule set":     `rules: []`,
		"missing kind":       "rules:\n  - severity: low\n    keywords: [x]",
		"missing keywords":   "rules:\n  - kind: stress\n    severity: low",
		"escalation without target": "rules:\n  - kind: stress\n    severity: low\n    keywords: [x]\n    escalate:\n      min_matches: 2",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := LoadRules(path)
			assert.Error(t, err)
		})
	}
}
