package models

// SentimentLabel is the classification outcome for a text.
type SentimentLabel string

// Sentiment labels.
const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
)

// VerdictSource records which backend produced a verdict.
type VerdictSource string

// Verdict sources.
const (
	SourceModel    VerdictSource = "model"
	SourceFallback VerdictSource = "fallback"
)

// LexiconModelName is the model identifier reported by the lexicon path.
// Source == SourceFallback always implies Model == LexiconModelName.
const LexiconModelName = "lexicon"

// SentimentVerdict is the result of classifying one text.
// Compound summarizes polarity and magnitude in [-1, 1]; for the model path
// it is derived from the label and confidence, for the lexicon path it is
// computed directly.
type SentimentVerdict struct {
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
	Compound   float64        `json:"compound"`
	Model      string         `json:"model"`
	Source     VerdictSource  `json:"source"`
	LatencyMS  int64          `json:"latency_ms"`
}
