package domain

import "errors"

var (
	ErrFestivalNotFound  = errors.New("festival not found")
	ErrPerformerNotFound = errors.New("performer not found")
)
