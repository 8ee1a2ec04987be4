package models

// ProgramDoc es el master de programas de TV.
type ProgramDoc struct {
	Pk      int    `json:"pk" bson:"pk"`
	NameKo  string `json:"nameKo" bson:"nameKo"`
	NameEn  string `json:"nameEn" bson:"nameEn"`
	GenreKo string `json:"genreKo" bson:"genreKo"`
	GenreEn string `json:"genreEn" bson:"genreEn"`

	// thumbnail; si es nil se resuelve con un asset aleatorio del mismo género
	AssetPk *int `json:"assetPk,omitempty" bson:"assetPk,omitempty"`
}

// ScheduleDoc es una franja de la parrilla semanal.
type ScheduleDoc struct {
	Pk        int    `json:"pk" bson:"pk"`
	DayOfWeek string `json:"dayOfWeek" bson:"dayOfWeek"` // 월요일, 화요일, ...
	Time      string `json:"time" bson:"time"`           // HH:MM
	Channel   string `json:"channel" bson:"channel"`
	ProgramPk int    `json:"programPk" bson:"programPk"`
}

// ViewingLogDoc es una entrada del historial de visionado.
type ViewingLogDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	ProgramPk int    `json:"programPk" bson:"programPk"`
	Quarter   string `json:"quarter" bson:"quarter"`   // Q1..Q4
	ViewDate  string `json:"viewDate" bson:"viewDate"` // YYYY-MM-DD
	ViewTime  string `json:"viewTime" bson:"viewTime"` // HH:MM
	Day       string `json:"day" bson:"day"`
	Channel   string `json:"channel" bson:"channel"`
}

// ====== DTOs ======

type ScheduleProgram struct {
	Channel     string `json:"channel"`
	Time        string `json:"time"`
	ProgramName string `json:"program_name"`
	Genre       string `json:"genre"`
}

type ViewingHistoryLog struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Channel     string `json:"channel"`
	ProgramName string `json:"program_name"`
	Genre       string `json:"genre"`
}

type PatternRecommendation struct {
	Channel      string  `json:"channel"`
	ProgramName  string  `json:"program_name"`
	Genre        string  `json:"genre"`
	Score        float64 `json:"score"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

type PatternRecommendations struct {
	Recommendations  []PatternRecommendation `json:"recommendations"`
	GenrePreferences map[string]float64      `json:"genre_preferences"`
}
