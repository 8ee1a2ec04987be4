package service

import "math"

// Escalados de presentación (float crudo → entero 0-100).
// Ninguno aplica clamp: los scores vienen acotados de las tablas offline
// y el comportamiento observable es multiplicar y redondear, nada más.

// scaleSimilarity: similitud 0~1 → 0-100.
func scaleSimilarity(score float64) int {
	return int(math.Round(score * 100))
}

// scaleRatingPredict: rating predicho 0~5 → 0-100.
func scaleRatingPredict(score float64) int {
	return int(math.Round(score * 20))
}

// scaleNLPScore: score NLP de reviews (0~10 escalado /10) → 0-100.
func scaleNLPScore(score float64) int {
	return int(math.Round(score * 100))
}

// keywordUnion une los keywords de overview y de reviews sin duplicados,
// conservando el orden de primera aparición.
func keywordUnion(overview, reviews []string) []string {
	seen := make(map[string]bool, len(overview)+len(reviews))
	out := make([]string, 0, len(overview)+len(reviews))
	for _, kw := range overview {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	for _, kw := range reviews {
		if !seen[kw] {
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}
