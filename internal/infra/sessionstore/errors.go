package sessionstore

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessionstore: session not found")

	// ErrSessionExists возвращается при попытке создать сессию с занятым ID
	ErrSessionExists = errors.New("sessionstore: session already exists")

	// ErrStaleGeneration возвращается при попытке зафиксировать booked-set,
	// полученный на устаревшем поколении запроса (дата успела смениться)
	ErrStaleGeneration = errors.New("sessionstore: stale fetch generation")
)
