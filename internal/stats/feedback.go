package stats

// Band classifies an accuracy percentage for display.
type Band int

// Accuracy bands.
const (
	BandLow Band = iota
	BandOK
	BandGood
)

// BandFor returns the display band for an accuracy percentage.
func BandFor(accuracy float64) Band {
	switch {
	case accuracy >= 90:
		return BandGood
	case accuracy >= 70:
		return BandOK
	default:
		return BandLow
	}
}

// Feedback returns the end-of-game headline for a score.
func Feedback(score, total int) string {
	acc := Accuracy(score, total)
	switch {
	case acc >= 80:
		return "Amazing work!"
	case acc >= 60:
		return "Good job!"
	default:
		return "Keep trying!"
	}
}
