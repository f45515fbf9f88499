package domain

import "context"

//go:generate mockgen -source=pin_repository.go -destination=pin_repository_mock.go -package=domain

// PinRepository holds the Pinned-Item Set. Its lifetime is independent of
// any notification or context activation.
type PinRepository interface {
	// Toggle flips membership of performerID and reports whether it is
	// pinned afterwards.
	Toggle(ctx context.Context, performerID int) (bool, error)
	IsPinned(ctx context.Context, performerID int) (bool, error)
	List(ctx context.Context) ([]int, error)
}
