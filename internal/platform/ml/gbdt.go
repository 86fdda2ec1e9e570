package ml

import (
	"errors"
	"math/rand"
)

// GBDT is a gradient-boosted ensemble of regression trees with a squared-error
// objective. Prediction is the base value plus the scaled sum of tree outputs.
type GBDT struct {
	Base         float64 `json:"base"`
	LearningRate float64 `json:"learning_rate"`
	Trees        []*Tree `json:"trees"`
}

// Predict evaluates the ensemble on a single feature vector.
func (m *GBDT) Predict(x []float64) float64 {
	out := m.Base
	for _, t := range m.Trees {
		out += m.LearningRate * t.Predict(x)
	}
	return out
}

// TrainParams are the boosting hyperparameters.
type TrainParams struct {
	NEstimators         int
	MaxDepth            int
	MinSamplesLeaf      int
	LearningRate        float64
	Subsample           float64
	ColsampleByTree     float64
	EarlyStoppingRounds int
	Seed                int64
}

// DefaultTrainParams mirrors the tuning the price model was developed with.
func DefaultTrainParams() TrainParams {
	return TrainParams{
		NEstimators:         1000,
		MaxDepth:            5,
		MinSamplesLeaf:      1,
		LearningRate:        0.05,
		Subsample:           0.8,
		ColsampleByTree:     0.8,
		EarlyStoppingRounds: 50,
		Seed:                42,
	}
}

// Train fits a GBDT on (x, y). When evalX is non-empty, held-out MSE is
// tracked each round and training stops after EarlyStoppingRounds rounds
// without improvement; the ensemble is truncated to its best round.
func Train(x [][]float64, y []float64, evalX [][]float64, evalY []float64, p TrainParams) (*GBDT, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, errors.New("training data is empty or mismatched")
	}
	nFeatures := len(x[0])
	rng := rand.New(rand.NewSource(p.Seed))

	model := &GBDT{
		Base:         meanAll(y),
		LearningRate: p.LearningRate,
	}

	trainPred := make([]float64, len(y))
	for i := range trainPred {
		trainPred[i] = model.Base
	}
	evalPred := make([]float64, len(evalY))
	for i := range evalPred {
		evalPred[i] = model.Base
	}

	residual := make([]float64, len(y))
	bestMSE := -1.0
	bestRound := -1
	stale := 0

	for round := 0; round < p.NEstimators; round++ {
		for i := range y {
			residual[i] = y[i] - trainPred[i]
		}

		rows := sampleRows(rng, len(y), p.Subsample)
		features := sampleFeatures(rng, nFeatures, p.ColsampleByTree)

		tree := buildTree(x, residual, rows, features, p.MaxDepth, p.MinSamplesLeaf)
		model.Trees = append(model.Trees, tree)

		for i := range x {
			trainPred[i] += p.LearningRate * tree.Predict(x[i])
		}

		if len(evalX) == 0 {
			continue
		}
		for i := range evalX {
			evalPred[i] += p.LearningRate * tree.Predict(evalX[i])
		}
		mse := MSE(evalY, evalPred)
		if bestMSE < 0 || mse < bestMSE {
			bestMSE = mse
			bestRound = round
			stale = 0
		} else {
			stale++
			if p.EarlyStoppingRounds > 0 && stale >= p.EarlyStoppingRounds {
				break
			}
		}
	}

	if bestRound >= 0 {
		model.Trees = model.Trees[:bestRound+1]
	}
	return model, nil
}

// sampleRows draws a uniform subsample of row indices without replacement.
func sampleRows(rng *rand.Rand, n int, fraction float64) []int {
	k := int(float64(n) * fraction)
	if k <= 0 || k > n {
		k = n
	}
	perm := rng.Perm(n)
	return perm[:k]
}

// sampleFeatures draws a feature subset, always keeping at least one.
func sampleFeatures(rng *rand.Rand, n int, fraction float64) []int {
	k := int(float64(n) * fraction)
	if k <= 0 {
		k = 1
	}
	if k > n {
		k = n
	}
	perm := rng.Perm(n)
	return perm[:k]
}

// MSE is the mean squared error between targets and predictions.
func MSE(y, pred []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	var s float64
	for i := range y {
		d := y[i] - pred[i]
		s += d * d
	}
	return s / float64(len(y))
}

// R2 is the coefficient of determination of predictions against targets.
func R2(y, pred []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	m := meanAll(y)
	var ssRes, ssTot float64
	for i := range y {
		d := y[i] - pred[i]
		ssRes += d * d
		t := y[i] - m
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

func meanAll(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	var s float64
	for _, v := range y {
		s += v
	}
	return s / float64(len(y))
}
