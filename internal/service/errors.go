package service

import "errors"

var (
	// ErrMovieNotFound: el pk base/seed no existe en el catálogo TMDB.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUserNotFound: el userId del token no existe en Mongo.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidDateTime: date/time no parsean como YYYY-MM-DD HH:MM.
	ErrInvalidDateTime = errors.New("invalid date/time")
)
