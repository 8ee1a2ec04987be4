package models

type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`

	// atributos demográficos del CSV original
	Gender     string `json:"gender" bson:"gender"`         // Female/Male
	Age        string `json:"age" bson:"age"`               // 1-17, 18-24, 25-34, 35-44, 45-49, 50-55, 56+
	Occupation string `json:"occupation" bson:"occupation"` // K-12 student, Programmer, ...
	Zip        string `json:"zip" bson:"zip"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
}
