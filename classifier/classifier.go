// Package classifier labels classroom environment snapshots as conducive or
// non-conducive for learning. The simulation core consumes only the
// Classifier interface; training, evaluation, and persistence are lifecycle
// operations driven by the CLI.
package classifier

// Features is the fixed feature vector a verdict is computed from.
type Features struct {
	CO2         float64 `json:"co2"`
	Temperature float64 `json:"temperature"`
	Noise       float64 `json:"noise"`
	Light       float64 `json:"light"`
}

// vector returns the features in canonical column order, matching the
// dataset CSV layout.
func (f Features) vector() [numFeatures]float64 {
	return [numFeatures]float64{f.CO2, f.Temperature, f.Noise, f.Light}
}

const numFeatures = 4

// Verdict is the classification result for one snapshot.
type Verdict struct {
	Conducive  bool
	Confidence float64 // in [0,1]
}

// Classifier is the stateless prediction contract the intervention
// controller depends on. Implementations must be deterministic once
// trained.
type Classifier interface {
	Predict(f Features) (Verdict, error)
}
