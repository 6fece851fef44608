package classifier

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ExtractedThresholds is the comfort envelope estimated from training data
// via empirical quantiles, stored alongside the trained model for operator
// inspection.
type ExtractedThresholds struct {
	CO2Max   float64 `json:"co2_max"`   // 80th percentile of observed CO2
	TempMin  float64 `json:"temp_min"`  // 10th percentile of observed temperature
	TempMax  float64 `json:"temp_max"`  // 90th percentile of observed temperature
	NoiseMax float64 `json:"noise_max"` // 80th percentile of observed noise
	LightMin float64 `json:"light_min"` // 20th percentile of observed light
}

// ExtractThresholds computes the quantile-based thresholds over the whole
// dataset.
func ExtractThresholds(ds *Dataset) ExtractedThresholds {
	co2 := column(ds, 0)
	temp := column(ds, 1)
	noise := column(ds, 2)
	light := column(ds, 3)
	return ExtractedThresholds{
		CO2Max:   quantile(0.8, co2),
		TempMin:  quantile(0.1, temp),
		TempMax:  quantile(0.9, temp),
		NoiseMax: quantile(0.8, noise),
		LightMin: quantile(0.2, light),
	}
}

func column(ds *Dataset, feat int) []float64 {
	out := make([]float64, ds.Len())
	for i, f := range ds.Features {
		out[i] = f.vector()[feat]
	}
	return out
}

// quantile sorts in place and takes the empirical quantile.
func quantile(p float64, xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sort.Float64s(xs)
	return stat.Quantile(p, stat.Empirical, xs, nil)
}
