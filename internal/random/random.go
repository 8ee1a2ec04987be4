package random

import (
	"math/rand"
)

// Source es la fuente de aleatoriedad que usan los servicios de
// recomendación. Se inyecta para poder usar una fuente determinista en tests.
type Source interface {
	Intn(n int) int
	Float64() float64
}

type processSource struct{}

func (processSource) Intn(n int) int   { return rand.Intn(n) }
func (processSource) Float64() float64 { return rand.Float64() }

// Default devuelve la fuente global del proceso (sin seed fija:
// la variedad entre llamadas repetidas es parte del producto).
func Default() Source {
	return processSource{}
}

// Pick elige un índice uniforme en [0, n). n debe ser > 0.
func Pick(src Source, n int) int {
	return src.Intn(n)
}

// WeightedPick elige un índice proporcional a weights.
// Pesos <= 0 nunca se eligen salvo que todos lo sean (en ese caso
// degrada a elección uniforme).
func WeightedPick(src Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return src.Intn(len(weights))
	}

	r := src.Float64() * total
	var acc float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}

// WeightedSample hace k extracciones con reemplazo (equivalente a
// random.choices de la implementación original).
func WeightedSample(src Source, weights []float64, k int) []int {
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, WeightedPick(src, weights))
	}
	return out
}
