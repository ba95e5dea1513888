package domain

import "errors"

var (
	ErrCarNotFound      = errors.New("electric car not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("car is already in favorites")
)
