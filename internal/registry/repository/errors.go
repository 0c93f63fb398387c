package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load state")
	ErrFailedToSave = errors.New("failed to save state")
)
