package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractThresholds_Quantiles(t *testing.T) {
	// columns run 1..100, so the quantiles are exact percentile values
	ds := &Dataset{}
	for i := 1; i <= 100; i++ {
		v := float64(i)
		ds.Features = append(ds.Features, Features{CO2: v, Temperature: v, Noise: v, Light: v})
		ds.Labels = append(ds.Labels, true)
	}

	th := ExtractThresholds(ds)
	assert.Equal(t, 80.0, th.CO2Max)
	assert.Equal(t, 10.0, th.TempMin)
	assert.Equal(t, 90.0, th.TempMax)
	assert.Equal(t, 80.0, th.NoiseMax)
	assert.Equal(t, 20.0, th.LightMin)
}

func TestThresholdClassifier_Verdicts(t *testing.T) {
	clf := &ThresholdClassifier{CO2Max: 1000, TempMin: 20, TempMax: 26, NoiseMax: 65, LightMin: 300}

	tests := []struct {
		name      string
		f         Features
		conducive bool
	}{
		{"all within", Features{CO2: 800, Temperature: 23, Noise: 50, Light: 400}, true},
		{"co2 over", Features{CO2: 1100, Temperature: 23, Noise: 50, Light: 400}, false},
		{"too hot", Features{CO2: 800, Temperature: 27, Noise: 50, Light: 400}, false},
		{"too cold", Features{CO2: 800, Temperature: 18, Noise: 50, Light: 400}, false},
		{"too loud", Features{CO2: 800, Temperature: 23, Noise: 70, Light: 400}, false},
		{"too dark", Features{CO2: 800, Temperature: 23, Noise: 50, Light: 200}, false},
		{"exactly at bounds", Features{CO2: 1000, Temperature: 26, Noise: 65, Light: 300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := clf.Predict(tt.f)
			assert.NoError(t, err)
			assert.Equal(t, tt.conducive, v.Conducive)
			assert.Equal(t, 1.0, v.Confidence)
		})
	}
}
