package models

// Lo que está en Mongo (importado desde TMDB por cmd/seed)
type MovieDoc struct {
	Pk            int     `json:"pk" bson:"pk"` // TMDB movie ID
	ReleaseDate   string  `json:"releaseDate" bson:"releaseDate"`
	Runtime       *int    `json:"runtime,omitempty" bson:"runtime,omitempty"`
	VoteAverage   float64 `json:"voteAverage" bson:"voteAverage"`
	VoteCount     int     `json:"voteCount" bson:"voteCount"`
	Popularity    float64 `json:"popularity" bson:"popularity"`
	Adult         bool    `json:"adult" bson:"adult"`
	PosterPath    *string `json:"posterPath,omitempty" bson:"posterPath,omitempty"`
	BackdropPath  *string `json:"backdropPath,omitempty" bson:"backdropPath,omitempty"`
	TitleEn       string  `json:"titleEn" bson:"titleEn"`
	OriginalTitle string  `json:"originalTitle" bson:"originalTitle"`
	OverviewEn    string  `json:"overviewEn" bson:"overviewEn"`
	TaglineEn     *string `json:"taglineEn,omitempty" bson:"taglineEn,omitempty"`
	TitleKo       *string `json:"titleKo,omitempty" bson:"titleKo,omitempty"`
	OverviewKo    *string `json:"overviewKo,omitempty" bson:"overviewKo,omitempty"`
	TaglineKo     *string `json:"taglineKo,omitempty" bson:"taglineKo,omitempty"`
	Director      *string `json:"director,omitempty" bson:"director,omitempty"`
	CastNames     *string `json:"castNames,omitempty" bson:"castNames,omitempty"`

	// referencias explícitas a los masters (sin lazy loading:
	// los repos hacen batch-fetch por pk)
	GenrePks   []int `json:"genrePks" bson:"genrePks"`
	KeywordPks []int `json:"keywordPks" bson:"keywordPks"`
}

// GenreDoc es el master de géneros TMDB.
type GenreDoc struct {
	Pk     int     `json:"pk" bson:"pk"` // TMDB genre ID (28, 80, 53, ...)
	NameEn string  `json:"nameEn" bson:"nameEn"`
	NameKo *string `json:"nameKo,omitempty" bson:"nameKo,omitempty"`
}

// DisplayName devuelve name_ko con fallback a name_en (regla uniforme
// para cualquier etiqueta bilingüe).
func (g GenreDoc) DisplayName() string {
	if g.NameKo != nil && *g.NameKo != "" {
		return *g.NameKo
	}
	return g.NameEn
}

type KeywordDoc struct {
	Pk     int    `json:"pk" bson:"pk"`
	TMDBID int    `json:"tmdbId" bson:"tmdbId"`
	Name   string `json:"name" bson:"name"`
}

// MovieNLPDoc guarda el score de reviews y los keywords extraídos offline.
type MovieNLPDoc struct {
	MoviePk          int      `json:"moviePk" bson:"moviePk"`
	ReviewNLPScore   float64  `json:"reviewNlpScore" bson:"reviewNlpScore"` // 0~10 escalado /10
	OverviewKeywords []string `json:"overviewKeywords" bson:"overviewKeywords"`
	ReviewsKeywords  []string `json:"reviewsKeywords" bson:"reviewsKeywords"`
}

// MovieLensMovieDoc es el catálogo MovieLens (espacio de ids distinto,
// se usa solo para resolver el título del seed).
type MovieLensMovieDoc struct {
	MovieID    int     `json:"movieId" bson:"movieId"`
	Title      string  `json:"title" bson:"title"`
	TitleClean string  `json:"titleClean" bson:"titleClean"`
	Year       *string `json:"year,omitempty" bson:"year,omitempty"`
	Genres     string  `json:"genres" bson:"genres"` // separados por pipe
}

// ====== DTOs de respuesta (mismos nombres snake_case que el front espera) ======

type MovieItem struct {
	Pk           int      `json:"pk"`
	TitleKo      *string  `json:"title_ko"`
	TitleEn      string   `json:"title_en"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	VoteAverage  float64  `json:"vote_average"`
	ReleaseDate  string   `json:"release_date"`
	Genres       []string `json:"genres"`
}

type MovieGenreDetail struct {
	Pk     int     `json:"pk"`
	NameKo *string `json:"name_ko"`
	NameEn string  `json:"name_en"`
}

type MovieKeywordDetail struct {
	Pk   int    `json:"pk"`
	Name string `json:"name"`
}

type MovieDetail struct {
	Pk            int      `json:"pk"`
	TitleKo       *string  `json:"title_ko"`
	TitleEn       string   `json:"title_en"`
	OriginalTitle string   `json:"original_title"`
	OverviewKo    *string  `json:"overview_ko"`
	OverviewEn    string   `json:"overview_en"`
	TaglineKo     *string  `json:"tagline_ko"`
	TaglineEn     *string  `json:"tagline_en"`
	PosterPath    *string  `json:"poster_path"`
	BackdropPath  *string  `json:"backdrop_path"`
	ReleaseDate   string   `json:"release_date"`
	Runtime       *int     `json:"runtime"`
	VoteAverage   float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
	Adult         bool     `json:"adult"`
	Director      *string  `json:"director"`
	CastNames     *string  `json:"cast_names"`

	Genres   []MovieGenreDetail   `json:"genres"`
	Keywords []MovieKeywordDetail `json:"keywords"`

	ReviewNLPScore   *int     `json:"review_nlp_score"`
	OverviewKeywords []string `json:"overview_keywords"`
	ReviewsKeywords  []string `json:"reviews_keywords"`
}

type MovieList struct {
	Movies []MovieItem `json:"movies"`
	Total  int64       `json:"total"`
}
