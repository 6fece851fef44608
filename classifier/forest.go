package classifier

import (
	"fmt"
	"math/rand"
	"sort"
)

// TreeNode is one node of a trained decision tree. Internal nodes route on
// a single feature; leaves carry the conducive fraction of their training
// samples.
type TreeNode struct {
	Leaf       bool      `json:"leaf,omitempty"`
	PConducive float64   `json:"p_conducive,omitempty"`
	Feature    int       `json:"feature,omitempty"`
	Split      float64   `json:"split,omitempty"`
	Left       *TreeNode `json:"left,omitempty"`
	Right      *TreeNode `json:"right,omitempty"`
}

// Forest is a bootstrap-aggregated ensemble of Gini-split decision trees,
// plus the comfort thresholds extracted from its training data.
type Forest struct {
	Trees      []*TreeNode         `json:"trees"`
	Thresholds ExtractedThresholds `json:"thresholds"`
}

// TrainOptions controls forest training. Zero values take the defaults
// noted per field.
type TrainOptions struct {
	NumTrees int   // default 50
	MaxDepth int   // default 6
	MinLeaf  int   // minimum samples per leaf, default 2
	Seed     int64 // bootstrap RNG seed
}

func (o *TrainOptions) withDefaults() {
	if o.NumTrees <= 0 {
		o.NumTrees = 50
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = 6
	}
	if o.MinLeaf <= 0 {
		o.MinLeaf = 2
	}
}

// Train fits a random forest on the dataset. Training is deterministic for
// a fixed seed: the only randomness is the bootstrap resampling.
func Train(ds *Dataset, opts TrainOptions) (*Forest, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("cannot train on an empty dataset")
	}
	opts.withDefaults()

	rng := rand.New(rand.NewSource(opts.Seed))
	f := &Forest{
		Trees:      make([]*TreeNode, 0, opts.NumTrees),
		Thresholds: ExtractThresholds(ds),
	}
	n := ds.Len()
	for t := 0; t < opts.NumTrees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		f.Trees = append(f.Trees, buildTree(ds, sample, opts.MaxDepth, opts.MinLeaf))
	}
	return f, nil
}

// Predict averages the per-tree conducive probability. Confidence is the
// ensemble's agreement with its own verdict.
func (f *Forest) Predict(feat Features) (Verdict, error) {
	if len(f.Trees) == 0 {
		return Verdict{}, fmt.Errorf("model not trained")
	}
	vec := feat.vector()
	var sum float64
	for _, tree := range f.Trees {
		sum += tree.prob(vec)
	}
	p := sum / float64(len(f.Trees))
	if p >= 0.5 {
		return Verdict{Conducive: true, Confidence: p}, nil
	}
	return Verdict{Conducive: false, Confidence: 1 - p}, nil
}

func (n *TreeNode) prob(vec [numFeatures]float64) float64 {
	for !n.Leaf {
		if vec[n.Feature] <= n.Split {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.PConducive
}

func buildTree(ds *Dataset, indices []int, depthLeft, minLeaf int) *TreeNode {
	positives := 0
	for _, idx := range indices {
		if ds.Labels[idx] {
			positives++
		}
	}
	p := float64(positives) / float64(len(indices))
	if depthLeft == 0 || positives == 0 || positives == len(indices) || len(indices) < 2*minLeaf {
		return &TreeNode{Leaf: true, PConducive: p}
	}

	feature, split, ok := bestSplit(ds, indices, minLeaf)
	if !ok {
		return &TreeNode{Leaf: true, PConducive: p}
	}

	var left, right []int
	for _, idx := range indices {
		if ds.Features[idx].vector()[feature] <= split {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return &TreeNode{
		Feature: feature,
		Split:   split,
		Left:    buildTree(ds, left, depthLeft-1, minLeaf),
		Right:   buildTree(ds, right, depthLeft-1, minLeaf),
	}
}

// bestSplit scans every feature for the threshold with the largest Gini
// impurity decrease, honoring the minimum leaf size on both sides.
func bestSplit(ds *Dataset, indices []int, minLeaf int) (feature int, split float64, ok bool) {
	n := len(indices)
	totalPos := 0
	for _, idx := range indices {
		if ds.Labels[idx] {
			totalPos++
		}
	}
	parentGini := gini(totalPos, n)
	best := parentGini // only accept splits that actually reduce impurity

	type sample struct {
		value float64
		label bool
	}
	for feat := 0; feat < numFeatures; feat++ {
		samples := make([]sample, n)
		for i, idx := range indices {
			samples[i] = sample{ds.Features[idx].vector()[feat], ds.Labels[idx]}
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i].value < samples[j].value })

		leftPos := 0
		for i := 1; i < n; i++ {
			if samples[i-1].label {
				leftPos++
			}
			if samples[i].value == samples[i-1].value {
				continue
			}
			if i < minLeaf || n-i < minLeaf {
				continue
			}
			weighted := (float64(i)*gini(leftPos, i) + float64(n-i)*gini(totalPos-leftPos, n-i)) / float64(n)
			if weighted < best {
				best = weighted
				feature = feat
				split = (samples[i-1].value + samples[i].value) / 2
				ok = true
			}
		}
	}
	return feature, split, ok
}

func gini(pos, n int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}
