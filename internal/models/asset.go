package models

// AssetDoc es un archivo subido (el storage real queda fuera: aquí solo
// se pasan las URLs).
type AssetDoc struct {
	Pk          int    `json:"pk" bson:"pk"`
	Name        string `json:"name" bson:"name"`
	ContentType string `json:"contentType" bson:"contentType"`
	UUID        string `json:"uuid" bson:"uuid"`
	URL         string `json:"url" bson:"url"`
	DownloadURL string `json:"downloadUrl" bson:"downloadUrl"`
}
