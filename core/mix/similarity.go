package mix

import (
	"math"

	"github.com/FmBlueSystem/MAPOfice-sub001/core/domain"
)

// Similarity computes the blended similarity of two HAMMS vectors under the
// given weights: EuclideanBlend * inverted normalized weighted-Euclidean
// distance + CosineBlend * weighted cosine similarity.
//
// The result is in [0,1], symmetric, and exactly 1 for identical vectors.
func Similarity(a, b domain.HAMMSVector, w Weights) float64 {
	if a.Values == b.Values {
		// Exact identity, independent of rounding in the cosine term.
		return 1
	}
	euclidean := euclideanSimilarity(a, b, w)
	cosine := cosineSimilarity(a, b, w)
	s := w.EuclideanBlend*euclidean + w.CosineBlend*cosine
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// euclideanSimilarity is 1 minus the weighted distance normalized by the
// largest distance the weights allow, so it lands in [0,1].
func euclideanSimilarity(a, b domain.HAMMSVector, w Weights) float64 {
	var sum, maxSum float64
	for i := 0; i < domain.Dimensions; i++ {
		d := w.Dimension[i] * (a.Values[i] - b.Values[i])
		sum += d * d
		maxSum += w.Dimension[i] * w.Dimension[i]
	}
	if maxSum == 0 {
		return 1
	}
	return 1 - math.Sqrt(sum)/math.Sqrt(maxSum)
}

func cosineSimilarity(a, b domain.HAMMSVector, w Weights) float64 {
	var dot, normA, normB float64
	for i := 0; i < domain.Dimensions; i++ {
		wa := w.Dimension[i] * a.Values[i]
		wb := w.Dimension[i] * b.Values[i]
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}
	if normA == 0 && normB == 0 {
		// Two zero vectors are identical.
		return 1
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	c := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// All entries are non-negative, so c is already in [0,1] up to rounding.
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}
