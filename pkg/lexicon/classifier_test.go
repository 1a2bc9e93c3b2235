package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohsono/sentiwatch/pkg/models"
)

func TestClassifyEmptyInput(t *testing.T) {
	c := New()

	v := c.Classify("")
	assert.Equal(t, models.LabelNeutral, v.Label)
	assert.Equal(t, 1.0, v.Confidence)
	assert.Equal(t, 0.0, v.Compound)
	assert.Equal(t, models.SourceFallback, v.Source)
	assert.Equal(t, models.LexiconModelName, v.Model)
}

func TestClassifyPositive(t *testing.T) {
	c := New()

	v := c.Classify("This campus is amazing and the people are wonderful")
	assert.Equal(t, models.LabelPositive, v.Label)
	assert.Positive(t, v.Compound)
	assert.InDelta(t, v.Compound, v.Confidence, 1e-9)
}

func TestClassifyNegative(t *testing.T) {
	c := New()

	v := c.Classify("I feel hopeless and worthless")
	assert.Equal(t, models.LabelNegative, v.Label)
	assert.Negative(t, v.Compound)
}

func TestClassifyNegationInvertsFollowingTokens(t *testing.T) {
	c := New()

	plain := c.Classify("this is good")
	negated := c.Classify("this is not good")

	require.Equal(t, models.LabelPositive, plain.Label)
	assert.Equal(t, models.LabelNegative, negated.Label)
	assert.InDelta(t, -plain.Compound, negated.Compound, 1e-9)
}

func TestClassifyNegationWindowIsBounded(t *testing.T) {
	c := New()

	// Four content tokens between the negator and the scored word; the
	// inversion window covers only three, so "good" keeps its sign.
	v := c.Classify("not one two three four good")
	assert.Equal(t, models.LabelPositive, v.Label)
}

func TestClassifyContractionNegator(t *testing.T) {
	c := New()

	v := c.Classify("I don't like this")
	assert.Equal(t, models.LabelNegative, v.Label)
}

func TestClassifyIntensifierBoostsMagnitude(t *testing.T) {
	c := New()

	base := c.Classify("good")
	boosted := c.Classify("very good")

	assert.Greater(t, boosted.Compound, base.Compound)
}

func TestClassifyDeterministic(t *testing.T) {
	c := New()
	const text = "really not terrible, actually quite good!"

	first := c.Classify(text)
	for i := 0; i < 10; i++ {
		v := c.Classify(text)
		assert.Equal(t, first.Label, v.Label)
		assert.Equal(t, first.Compound, v.Compound)
		assert.Equal(t, first.Confidence, v.Confidence)
	}
}

func TestClassifyUnknownTokensAreNeutral(t *testing.T) {
	c := New()

	v := c.Classify("qwerty zxcvb asdfgh")
	assert.Equal(t, models.LabelNeutral, v.Label)
	assert.Equal(t, 1.0, v.Confidence)
}

func TestTokenizePreservesSentencePunctuation(t *testing.T) {
	tokens := Tokenize("Really?! That's great.")
	assert.Equal(t, []string{"really", "?", "!", "that's", "great"}, tokens)
}

func TestCompoundBounded(t *testing.T) {
	c := New()

	v := c.Classify("amazing wonderful excellent fantastic great awesome best love thrilled")
	assert.Less(t, v.Compound, 1.0)
	assert.Greater(t, v.Compound, 0.0)
}
