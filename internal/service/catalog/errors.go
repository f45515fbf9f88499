package catalog

import "errors"

var (
	ErrNoFestivals          = errors.New("catalog has no festivals")
	ErrNoAmbientTemplates   = errors.New("catalog has no ambient templates")
	ErrInvalidTemplate      = errors.New("invalid notification template")
	ErrDuplicatePerformer   = errors.New("duplicate performer id")
	ErrNoMeasurableFestival = errors.New("no festival has a readable distance")
)
