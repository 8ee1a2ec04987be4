package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dsikeres1/innopia/internal/config"
	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Seeder de datos demo: usuarios y el lado pattern (programas, parrilla,
// historial de visionado, assets). Las tablas de películas, similitud y
// predicción las carga el pipeline offline, aquí no se tocan.

var ages = []string{"1-17", "18-24", "25-34", "35-44", "45-49", "50-55", "56+"}
var occupations = []string{
	"K-12 student", "college/grad student", "Programmer", "Scientist",
	"Doctor/health care", "Educator", "Artist", "Writer", "Entertainment",
	"Retired", "Self-employed", "Homemaker",
}
var genders = []string{"Female", "Male"}

var genresKo = []string{"뉴스", "드라마", "예능", "영화", "스포츠", "다큐", "애니", "음악", "홈쇼핑", "시사"}
var genresEn = []string{"News", "Drama", "Variety", "Movie", "Sports", "Documentary", "Animation", "Music", "Home Shopping", "Current Affairs"}

var weekdays = []string{"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일"}
var quarters = []string{"Q1", "Q2", "Q3", "Q4"}

var timeSlots = []string{
	"06:00", "08:00", "10:00", "12:00", "14:00",
	"16:00", "18:00", "20:00", "22:00", "00:00",
}

const (
	numUsers    = 100
	numChannels = 12
	numPrograms = 60
	numAssets   = 30
)

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seedUsers(ctx)
	seedPattern(ctx)

	log.Println("[seed] listo.")
}

func reset(ctx context.Context, name string) *mongo.Collection {
	col := db.DB().Collection(name)
	if err := col.Drop(ctx); err != nil {
		log.Fatalf("[seed] drop %s: %v", name, err)
	}
	return col
}

func insertAll(ctx context.Context, col *mongo.Collection, docs []any) {
	if len(docs) == 0 {
		return
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		log.Fatalf("[seed] insert %s: %v", col.Name(), err)
	}
	log.Printf("[seed] %s: %d docs", col.Name(), len(docs))
}

func seedUsers(ctx context.Context) {
	col := reset(ctx, "users")

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[seed] bcrypt: %v", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	docs := make([]any, 0, numUsers)
	for i := 1; i <= numUsers; i++ {
		docs = append(docs, models.UserDoc{
			UserID:       i,
			Email:        fmt.Sprintf("user%d@innopia.dev", i),
			PasswordHash: string(hash),
			Role:         "user",
			Gender:       genders[rand.Intn(len(genders))],
			Age:          ages[rand.Intn(len(ages))],
			Occupation:   occupations[rand.Intn(len(occupations))],
			Zip:          fmt.Sprintf("%05d", rand.Intn(100000)),
			CreatedAt:    now,
		})
	}
	insertAll(ctx, col, docs)
}

func seedPattern(ctx context.Context) {
	assetCol := reset(ctx, "assets")
	programCol := reset(ctx, "programs")
	scheduleCol := reset(ctx, "schedules")
	logCol := reset(ctx, "viewing_logs")

	// assets de thumbnail (urls de picsum, como el import original)
	assets := make([]any, 0, numAssets)
	for i := 1; i <= numAssets; i++ {
		id := uuid.New().String()
		assets = append(assets, models.AssetDoc{
			Pk:          i,
			Name:        fmt.Sprintf("thumb_%d.jpg", i),
			ContentType: "image/jpeg",
			UUID:        id,
			URL:         fmt.Sprintf("https://picsum.photos/seed/%s/640/360", id),
			DownloadURL: fmt.Sprintf("https://picsum.photos/seed/%s/640/360?download=1", id),
		})
	}
	insertAll(ctx, assetCol, assets)

	// programas: ~la mitad sin asset propio, para ejercitar el fallback
	// de thumbnail por género
	programs := make([]any, 0, numPrograms)
	programDocs := make([]models.ProgramDoc, 0, numPrograms)
	for i := 1; i <= numPrograms; i++ {
		gi := rand.Intn(len(genresKo))
		var assetPk *int
		if rand.Intn(2) == 0 {
			pk := 1 + rand.Intn(numAssets)
			assetPk = &pk
		}
		p := models.ProgramDoc{
			Pk:      i,
			NameKo:  fmt.Sprintf("%s 프로그램 %d", genresKo[gi], i),
			NameEn:  fmt.Sprintf("%s Program %d", genresEn[gi], i),
			GenreKo: genresKo[gi],
			GenreEn: genresEn[gi],
			AssetPk: assetPk,
		}
		programs = append(programs, p)
		programDocs = append(programDocs, p)
	}
	insertAll(ctx, programCol, programs)

	// parrilla semanal: cada (día, franja, canal) emite un programa
	schedules := make([]any, 0, len(weekdays)*len(timeSlots)*numChannels)
	pk := 1
	for _, day := range weekdays {
		for _, slot := range timeSlots {
			for ch := 1; ch <= numChannels; ch++ {
				schedules = append(schedules, models.ScheduleDoc{
					Pk:        pk,
					DayOfWeek: day,
					Time:      slot,
					Channel:   fmt.Sprintf("채널%d", ch),
					ProgramPk: programDocs[rand.Intn(len(programDocs))].Pk,
				})
				pk++
			}
		}
	}
	insertAll(ctx, scheduleCol, schedules)

	// historial de visionado: 30-80 entradas por usuario en el último año
	logs := make([]any, 0, numUsers*50)
	for u := 1; u <= numUsers; u++ {
		n := 30 + rand.Intn(51)
		for i := 0; i < n; i++ {
			p := programDocs[rand.Intn(len(programDocs))]
			date := time.Now().AddDate(0, 0, -rand.Intn(365))
			logs = append(logs, models.ViewingLogDoc{
				UserID:    u,
				ProgramPk: p.Pk,
				Quarter:   quarters[(int(date.Month())-1)/3],
				ViewDate:  date.Format("2006-01-02"),
				ViewTime:  timeSlots[rand.Intn(len(timeSlots))],
				Day:       weekdays[(int(date.Weekday())+6)%7],
				Channel:   fmt.Sprintf("채널%d", 1+rand.Intn(numChannels)),
			})
		}
	}
	insertAll(ctx, logCol, logs)
}
