package service

import "testing"

func TestScaleSimilarity(t *testing.T) {
	// para cualquier score en [0,1] el resultado queda en [0,100]
	for i := 0; i <= 100; i++ {
		score := float64(i) / 100.0
		got := scaleSimilarity(score)
		if got < 0 || got > 100 {
			t.Fatalf("scaleSimilarity(%v) = %d fuera de [0,100]", score, got)
		}
	}

	if got := scaleSimilarity(0.9); got != 90 {
		t.Fatalf("scaleSimilarity(0.9) = %d, quiero 90", got)
	}
	if got := scaleSimilarity(0.505); got != 51 {
		t.Fatalf("scaleSimilarity(0.505) = %d, quiero 51", got)
	}
}

func TestScaleRatingPredict(t *testing.T) {
	for i := 0; i <= 50; i++ {
		score := float64(i) / 10.0
		got := scaleRatingPredict(score)
		if got < 0 || got > 100 {
			t.Fatalf("scaleRatingPredict(%v) = %d fuera de [0,100]", score, got)
		}
	}

	if got := scaleRatingPredict(4.5); got != 90 {
		t.Fatalf("scaleRatingPredict(4.5) = %d, quiero 90", got)
	}
}

func TestScaleNLPScoreSinClamp(t *testing.T) {
	if got := scaleNLPScore(0.87); got != 87 {
		t.Fatalf("scaleNLPScore(0.87) = %d, quiero 87", got)
	}
	// sin clamp: un score upstream fuera de rango produce >100 tal cual
	if got := scaleNLPScore(1.2); got != 120 {
		t.Fatalf("scaleNLPScore(1.2) = %d, quiero 120", got)
	}
}

func TestKeywordUnion(t *testing.T) {
	got := keywordUnion(
		[]string{"space", "war", "space"},
		[]string{"war", "robot"},
	)

	want := []string{"space", "war", "robot"}
	if len(got) != len(want) {
		t.Fatalf("union = %v, quiero %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("union[%d] = %q, quiero %q", i, got[i], want[i])
		}
	}
}
