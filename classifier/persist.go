package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the trained forest to a JSON model file.
func (f *Forest) Save(path string) error {
	if len(f.Trees) == 0 {
		return fmt.Errorf("refusing to save an untrained model")
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	return nil
}

// Load reads a trained forest from a JSON model file. A missing file, an
// empty model, or a structurally broken tree is an error; callers must treat
// it as a configuration problem, never as permission to default to an
// always-conducive verdict. Every tree is walked here so Predict never meets
// a dangling node mid-run.
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model %s not trained", path)
	}
	for i, tree := range f.Trees {
		if err := tree.validate(); err != nil {
			return nil, fmt.Errorf("model %s is malformed: tree %d: %w", path, i, err)
		}
	}
	return &f, nil
}

// validate walks the tree and rejects shapes Predict cannot route through:
// missing nodes, internal nodes without both children, and feature indices
// outside the fixed vector.
func (n *TreeNode) validate() error {
	if n == nil {
		return fmt.Errorf("missing node")
	}
	if n.Leaf {
		return nil
	}
	if n.Feature < 0 || n.Feature >= numFeatures {
		return fmt.Errorf("internal node routes on unknown feature %d", n.Feature)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("internal node at feature %d split %g is missing a child", n.Feature, n.Split)
	}
	if err := n.Left.validate(); err != nil {
		return err
	}
	return n.Right.validate()
}
