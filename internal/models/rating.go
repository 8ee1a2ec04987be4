package models

// RatingDoc es el rating MovieLens importado (solo lectura en runtime).
// movieId es el id MovieLens, NO el pk TMDB.
type RatingDoc struct {
	UserID    int     `json:"userId" bson:"userId"`
	MovieID   int     `json:"movieId" bson:"movieId"`
	Rating    float64 `json:"rating" bson:"rating"` // 0.5 ~ 5.0
	Timestamp int64   `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}
