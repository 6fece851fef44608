package classifier

// ThresholdClassifier is a deterministic rule-based classifier: a snapshot
// is conducive when every reading sits inside the comfort envelope. It is an
// explicit opt-in alternative to a trained forest, never a silent fallback.
type ThresholdClassifier struct {
	CO2Max   float64
	TempMin  float64
	TempMax  float64
	NoiseMax float64
	LightMin float64
}

// Predict checks every reading against its bound. Confidence is always 1:
// the rule is exact, not probabilistic.
func (t *ThresholdClassifier) Predict(f Features) (Verdict, error) {
	conducive := f.CO2 <= t.CO2Max &&
		f.Temperature >= t.TempMin && f.Temperature <= t.TempMax &&
		f.Noise <= t.NoiseMax &&
		f.Light >= t.LightMin
	return Verdict{Conducive: conducive, Confidence: 1}, nil
}
