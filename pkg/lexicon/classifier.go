// Package lexicon implements the deterministic valence-dictionary sentiment
// classifier used as the fallback path of the failsafe dispatcher. It does no
// I/O and is safe for concurrent use.
package lexicon

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/ohsono/sentiwatch/pkg/models"
)

const (
	// negationWindow is how many content tokens after a negator have their
	// sign inverted.
	negationWindow = 3

	// intensifierBoost multiplies the magnitude of the content token that
	// immediately follows an intensifier.
	intensifierBoost = 1.5

	// neutralBand is the compound threshold below which a text is neutral.
	neutralBand = 0.05

	// normalizationAlpha is the denominator constant of the compound
	// normalization x / sqrt(x^2 + alpha), as in VADER.
	normalizationAlpha = 15.0
)

// Classifier scores text against the built-in valence dictionary.
// The zero value is not usable; call New.
type Classifier struct {
	valence      map[string]float64
	negators     map[string]bool
	intensifiers map[string]bool
}

// New returns a classifier backed by the built-in dictionary.
func New() *Classifier {
	return &Classifier{
		valence:      valence,
		negators:     negators,
		intensifiers: intensifiers,
	}
}

// Classify scores text and returns a fallback-tagged verdict. It is a pure
// function of its input: identical text yields an identical verdict.
func (c *Classifier) Classify(text string) models.SentimentVerdict {
	start := time.Now()

	tokens := Tokenize(text)
	compound := c.compound(tokens)
	label, confidence := mapCompound(compound)

	return models.SentimentVerdict{
		Label:      label,
		Confidence: confidence,
		Compound:   compound,
		Model:      models.LexiconModelName,
		Source:     models.SourceFallback,
		LatencyMS:  time.Since(start).Milliseconds(),
	}
}

// compound sums token contributions and normalizes the total into [-1, 1].
func (c *Classifier) compound(tokens []string) float64 {
	var (
		sum           float64
		sinceNegator  = negationWindow + 1
		prevIntensive bool
	)

	for _, tok := range tokens {
		if c.negators[tok] || strings.HasSuffix(tok, "n't") {
			sinceNegator = 0
			prevIntensive = false
			continue
		}
		if c.intensifiers[tok] {
			prevIntensive = true
			continue
		}

		// Content token (including unknown words and ! / ? tokens).
		score := c.valence[tok]
		if prevIntensive {
			score *= intensifierBoost
		}
		if sinceNegator < negationWindow {
			score = -score
		}
		sum += score

		sinceNegator++
		prevIntensive = false
	}

	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

// mapCompound converts a compound score to a label and confidence.
// Non-neutral confidence is |compound|; neutral confidence grows as the
// compound approaches zero.
func mapCompound(compound float64) (models.SentimentLabel, float64) {
	switch {
	case compound >= neutralBand:
		return models.LabelPositive, math.Abs(compound)
	case compound <= -neutralBand:
		return models.LabelNegative, math.Abs(compound)
	default:
		conf := 1 - math.Abs(compound)/neutralBand
		if conf < 0 {
			conf = 0
		}
		return models.LabelNeutral, conf
	}
}

// Tokenize splits text on whitespace and punctuation boundaries, lowercasing
// word tokens and preserving '!' and '?' as standalone tokens. Apostrophes
// stay inside words so contractions like "can't" survive intact.
func Tokenize(text string) []string {
	var (
		tokens []string
		b      strings.Builder
	)

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(unicode.ToLower(r))
		case r == '!' || r == '?':
			flush()
			tokens = append(tokens, string(r))
		default:
			flush()
		}
	}
	flush()

	return tokens
}
