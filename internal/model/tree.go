package model

import (
	"context"
	"errors"
	"fmt"
)

// TreeNode is one node of a serialized decision tree. Leaves carry the
// fitted class counts, which double as the probability estimate.
type TreeNode struct {
	FeatureIdx int       `json:"feature_idx"`
	Threshold  float64   `json:"threshold"`
	LeftChild  int       `json:"left_child"`
	RightChild int       `json:"right_child"`
	IsLeaf     bool      `json:"is_leaf"`
	Counts     []float64 `json:"counts,omitempty"`
}

// DecisionTree evaluates a pre-fitted tree artifact.
type DecisionTree struct {
	features []Feature
	classes  []string
	nodes    []TreeNode
}

func (dt *DecisionTree) Classes() []string {
	return dt.classes
}

func (dt *DecisionTree) Predict(ctx context.Context, row Row) (string, error) {
	counts, err := dt.leafCounts(ctx, row)
	if err != nil {
		return "", err
	}
	return dt.classes[argmax(counts)], nil
}

func (dt *DecisionTree) PredictProba(ctx context.Context, row Row) ([]float64, error) {
	counts, err := dt.leafCounts(ctx, row)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, errors.New("leaf has no samples")
	}
	proba := make([]float64, len(counts))
	for i, c := range counts {
		proba[i] = c / total
	}
	return proba, nil
}

func (dt *DecisionTree) leafCounts(ctx context.Context, row Row) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec, err := vectorize(dt.features, row)
	if err != nil {
		return nil, err
	}

	idx := 0
	for hops := 0; hops <= len(dt.nodes); hops++ {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.Counts, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(vec) {
			return nil, fmt.Errorf("feature index %d out of range", node.FeatureIdx)
		}
		if vec[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(dt.nodes) {
			return nil, errors.New("invalid tree state")
		}
	}
	return nil, errors.New("tree traversal did not reach a leaf")
}

func validateTree(features []Feature, classes []string, nodes []TreeNode) error {
	if len(nodes) == 0 {
		return errors.New("tree artifact has no nodes")
	}
	dims := 0
	for _, f := range features {
		if len(f.Categories) > 0 {
			dims += len(f.Categories)
		} else {
			dims++
		}
	}
	for i, node := range nodes {
		if node.IsLeaf {
			if len(node.Counts) != len(classes) {
				return fmt.Errorf("node %d: leaf counts do not match class count", i)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= dims {
			return fmt.Errorf("node %d: feature index %d out of range", i, node.FeatureIdx)
		}
		if node.LeftChild <= 0 || node.LeftChild >= len(nodes) ||
			node.RightChild <= 0 || node.RightChild >= len(nodes) {
			return fmt.Errorf("node %d: child index out of range", i)
		}
	}
	return nil
}
