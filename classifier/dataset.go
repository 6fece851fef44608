package classifier

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// Dataset is a labeled collection of environment snapshots for training and
// evaluation. Labels are true for conducive.
type Dataset struct {
	Features []Features
	Labels   []bool
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Features)
}

var datasetColumns = []string{"co2", "temperature", "noise", "light", "conducive"}

// LoadDataset reads a labeled CSV with header co2,temperature,noise,light,conducive.
// The label column accepts 0/1 or true/false.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset %s has no samples", path)
	}

	header := rows[0]
	if len(header) != len(datasetColumns) {
		return nil, fmt.Errorf("dataset header has %d columns, want %d (%s)",
			len(header), len(datasetColumns), strings.Join(datasetColumns, ","))
	}
	for i, col := range datasetColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, fmt.Errorf("dataset column %d is %q, want %q", i, header[i], col)
		}
	}

	ds := &Dataset{}
	for rowIdx, row := range rows[1:] {
		var vals [numFeatures]float64
		for i := 0; i < numFeatures; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("dataset row %d, column %s: %w", rowIdx+2, datasetColumns[i], err)
			}
			vals[i] = v
		}
		label, err := parseLabel(row[numFeatures])
		if err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", rowIdx+2, err)
		}
		ds.Features = append(ds.Features, Features{
			CO2:         vals[0],
			Temperature: vals[1],
			Noise:       vals[2],
			Light:       vals[3],
		})
		ds.Labels = append(ds.Labels, label)
	}
	return ds, nil
}

func parseLabel(s string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("unknown label %q; valid: 0, 1, true, false", s)
}

// Split shuffles the dataset with the given RNG and carves off testFraction
// of it for evaluation.
func (d *Dataset) Split(testFraction float64, rng *rand.Rand) (train, test *Dataset, err error) {
	if testFraction < 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("test fraction must be in [0,1), got %f", testFraction)
	}
	n := d.Len()
	perm := rng.Perm(n)
	testN := int(float64(n) * testFraction)

	train, test = &Dataset{}, &Dataset{}
	for i, idx := range perm {
		dst := train
		if i < testN {
			dst = test
		}
		dst.Features = append(dst.Features, d.Features[idx])
		dst.Labels = append(dst.Labels, d.Labels[idx])
	}
	return train, test, nil
}

// Accuracy evaluates a classifier against a labeled dataset.
func Accuracy(c Classifier, ds *Dataset) (float64, error) {
	if ds.Len() == 0 {
		return 0, fmt.Errorf("cannot evaluate on an empty dataset")
	}
	correct := 0
	for i, f := range ds.Features {
		v, err := c.Predict(f)
		if err != nil {
			return 0, err
		}
		if v.Conducive == ds.Labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(ds.Len()), nil
}
