// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package matching

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWeightValues are the production weights, one per feature position.
var DefaultWeightValues = []float64{0.35, 0.20, 0.15, 0.10, 0.10, 0.10}

// ErrInvalidWeights is returned by NewWeights for unusable weight sets.
var ErrInvalidWeights = errors.New("invalid scoring weights")

// Weights is an immutable, validated weight set. The zero value is unusable;
// build one with NewWeights or DefaultWeights.
type Weights struct {
	values []float64
	sum    float64
}

// NewWeights validates and copies values. Every weight must be finite and
// non-negative and at least one must be positive.
func NewWeights(values []float64) (Weights, error) {
	if len(values) == 0 {
		return Weights{}, fmt.Errorf("%w: no weights given", ErrInvalidWeights)
	}
	sum := 0.0
	for i, w := range values {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return Weights{}, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
		sum += w
	}
	if sum <= 0 {
		return Weights{}, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}
	return Weights{values: append([]float64(nil), values...), sum: sum}, nil
}

// DefaultWeights returns the production weight set.
func DefaultWeights() Weights {
	w, err := NewWeights(DefaultWeightValues)
	if err != nil {
		panic(err) // static data
	}
	return w
}

// Len returns the number of weights.
func (w Weights) Len() int { return len(w.values) }

// Sum returns the total of all weights.
func (w Weights) Sum() float64 { return w.sum }

// Values returns a copy of the weights.
func (w Weights) Values() []float64 { return append([]float64(nil), w.values...) }

// Scorer computes weighted-average compatibility scores.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer using w. A zero Weights falls back to DefaultWeights.
func NewScorer(w Weights) *Scorer {
	if w.Len() == 0 {
		w = DefaultWeights()
	}
	return &Scorer{weights: w}
}

// Weights returns the scorer's weight set.
func (s *Scorer) Weights() Weights { return s.weights }

// Score returns Σ v[i]·w[i] / Σ w.
//
// The denominator is always the full weight sum: a short vector is treated as
// having zeros in its missing positions, and entries past the last weight are
// ignored. For vectors in [0,1] the result is in [0,1].
func (s *Scorer) Score(v FeatureVector) float64 {
	n := min(len(v), len(s.weights.values))
	total := 0.0
	for i := 0; i < n; i++ {
		total += v[i] * s.weights.values[i]
	}
	return total / s.weights.sum
}

// Contribution is one dimension's share of a score.
type Contribution struct {
	Feature  string  `json:"feature"`
	Value    float64 `json:"value"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Breakdown returns each weighted dimension's contribution to Score(v).
// The Weighted fields add up to Score(v).
func (s *Scorer) Breakdown(v FeatureVector) []Contribution {
	out := make([]Contribution, len(s.weights.values))
	for i, w := range s.weights.values {
		name := fmt.Sprintf("feature_%d", i)
		if i < FeatureCount {
			name = FeatureNames[i]
		}
		val := 0.0
		if i < len(v) {
			val = v[i]
		}
		out[i] = Contribution{Feature: name, Value: val, Weight: w, Weighted: val * w / s.weights.sum}
	}
	return out
}
