package models

import "time"

type RecommendedMovie struct {
	Pk              int      `json:"pk"`
	TitleKo         *string  `json:"title_ko"`
	TitleEn         string   `json:"title_en"`
	PosterPath      *string  `json:"poster_path"`
	SimilarityScore int      `json:"similarity_score"` // 0-100 (100 fijo en la ruta personalizada)
	Genres          []string `json:"genres"`
	ReviewNLPScore  *int     `json:"review_nlp_score"`
	RatingPredict   *int     `json:"rating_predict"` // 0-100, null en la ruta por similitud
	Keywords        []string `json:"keywords"`
}

type MovieRecommendation struct {
	RecommendedMovies []RecommendedMovie `json:"recommended_movies"`
}

type UserMovieRecommendation struct {
	SelectedMovieTitle *string            `json:"selected_movie_title"`
	SelectedMoviePk    *int               `json:"selected_movie_pk"`
	RecommendedMovies  []RecommendedMovie `json:"recommended_movies"`
}

type UserMovieRecommendationMultiple struct {
	Recommendations []UserMovieRecommendation `json:"recommendations"`
}

// ====== Historial en Mongo (auditoría, nunca bloquea la respuesta) ======

type RecItem struct {
	MoviePk int     `bson:"moviePk" json:"moviePk"`
	Score   float64 `bson:"score"   json:"score"`
}

type Recommendation struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      int       `bson:"userId"        json:"userId"`
	Algo        string    `bson:"algo"          json:"algo"`
	SeedMoviePk *int      `bson:"seedMoviePk,omitempty" json:"seedMoviePk,omitempty"`
	Params      any       `bson:"params"        json:"params"`
	Items       []RecItem `bson:"items"         json:"items"`
	CreatedAt   time.Time `bson:"createdAt"     json:"createdAt"`
}
