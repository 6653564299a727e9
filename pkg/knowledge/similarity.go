package knowledge

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity between two equal-length vectors:
// dot(a,b) / (|a| * |b|), in the range [-1, 1].
//
// Vectors of different lengths return ErrDimensionMismatch. If either
// vector has zero norm the similarity is 0 rather than a division by zero.
func Cosine(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}
