package models

// SimilarityDoc es una arista de similitud TMDB→TMDB precalculada offline.
type SimilarityDoc struct {
	SourceMoviePk   int     `json:"sourceMoviePk" bson:"sourceMoviePk"`
	TargetMoviePk   int     `json:"targetMoviePk" bson:"targetMoviePk"`
	SimilarityScore float64 `json:"similarityScore" bson:"similarityScore"` // 0~1

	TitleSimilarity float64 `json:"titleSimilarity" bson:"titleSimilarity"`
	GenreSimilarity float64 `json:"genreSimilarity" bson:"genreSimilarity"`
	YearSimilarity  float64 `json:"yearSimilarity" bson:"yearSimilarity"`
}

// MovieLensTMDBSimilarityDoc puentea los dos espacios de ids:
// source es un id MovieLens y target un pk TMDB.
type MovieLensTMDBSimilarityDoc struct {
	MovieLensMovieID int     `json:"movielensMovieId" bson:"movielensMovieId"`
	TMDBMoviePk      int     `json:"tmdbMoviePk" bson:"tmdbMoviePk"`
	SimilarityScore  float64 `json:"similarityScore" bson:"similarityScore"` // 0.4*title + 0.4*genre + 0.2*year

	TitleSimilarity float64 `json:"titleSimilarity" bson:"titleSimilarity"`
	GenreSimilarity float64 `json:"genreSimilarity" bson:"genreSimilarity"`
	YearSimilarity  float64 `json:"yearSimilarity" bson:"yearSimilarity"`
}

// PredictionDoc es el rating predicho por el modelo offline para
// (usuario, película base) → película recomendada.
type PredictionDoc struct {
	UserID             int     `json:"userId" bson:"userId"`
	BaseMoviePk        int     `json:"baseMoviePk" bson:"baseMoviePk"`
	RecommendedMoviePk int     `json:"recommendedMoviePk" bson:"recommendedMoviePk"`
	RatingPredict      float64 `json:"ratingPredict" bson:"ratingPredict"` // 0.0 ~ 5.0
}
