// Package embedding provides the similarity collaborator consumed by the
// scoring engine: a cosine helper over already-produced vectors and a
// Gemini-backed vector provider.
package embedding

import "math"

// Cosine returns the cosine similarity of two vectors in [-1,1].
// Mismatched lengths are compared over the shorter prefix; a zero or
// empty vector yields 0.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if similarity > 1 {
		return 1
	}
	if similarity < -1 {
		return -1
	}
	return similarity
}
