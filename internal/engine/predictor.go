package engine

import (
	"errors"
	"math"
)

// sample is one graded attempt: the player's score and level at grading time,
// and whether the answer was correct.
type sample struct {
	score float64
	level float64
	label float64 // 1 correct, 0 incorrect
}

// logisticModel is a two-feature binary logistic classifier fit by batch
// gradient descent. Features are standardized before fitting so the raw
// score scale (tens to hundreds) doesn't dominate the level scale (1-10).
type logisticModel struct {
	bias, wScore, wLevel float64

	meanScore, stdScore float64
	meanLevel, stdLevel float64
}

const (
	fitEpochs       = 500
	fitLearningRate = 0.1
)

var errSingleClass = errors.New("training set contains a single class")

// fitLogistic trains a fresh model on the full sample set. It refuses a
// single-class set: a classifier fit on only-correct or only-incorrect
// outcomes has no decision boundary to learn.
func fitLogistic(samples []sample) (*logisticModel, error) {
	positives := 0
	for _, s := range samples {
		if s.label > 0.5 {
			positives++
		}
	}
	if positives == 0 || positives == len(samples) {
		return nil, errSingleClass
	}

	m := &logisticModel{}
	m.meanScore, m.stdScore = meanStd(samples, func(s sample) float64 { return s.score })
	m.meanLevel, m.stdLevel = meanStd(samples, func(s sample) float64 { return s.level })

	n := float64(len(samples))
	for epoch := 0; epoch < fitEpochs; epoch++ {
		var gBias, gScore, gLevel float64
		for _, s := range samples {
			zs := (s.score - m.meanScore) / m.stdScore
			zl := (s.level - m.meanLevel) / m.stdLevel
			err := sigmoid(m.bias+m.wScore*zs+m.wLevel*zl) - s.label
			gBias += err
			gScore += err * zs
			gLevel += err * zl
		}
		m.bias -= fitLearningRate * gBias / n
		m.wScore -= fitLearningRate * gScore / n
		m.wLevel -= fitLearningRate * gLevel / n
	}

	return m, nil
}

// probability returns the positive-class probability for one (score, level) pair.
func (m *logisticModel) probability(score, level float64) float64 {
	zs := (score - m.meanScore) / m.stdScore
	zl := (level - m.meanLevel) / m.stdLevel
	return sigmoid(m.bias + m.wScore*zs + m.wLevel*zl)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// meanStd returns the mean and standard deviation of one feature. A constant
// feature gets std 1 so standardization never divides by zero.
func meanStd(samples []sample, feat func(sample) float64) (mean, std float64) {
	n := float64(len(samples))
	for _, s := range samples {
		mean += feat(s)
	}
	mean /= n

	for _, s := range samples {
		d := feat(s) - mean
		std += d * d
	}
	std = math.Sqrt(std / n)
	if std == 0 {
		std = 1
	}
	return mean, std
}
