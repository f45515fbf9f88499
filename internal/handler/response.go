package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

const (
	errTypeInvalidID   = "invalid_id"
	errTypeNotFound    = "not_found"
	errTypeRateLimited = "rate_limited"
	errTypeInternal    = "internal_error"
)

// SessionController is the festival detail context as seen by HTTP handlers.
type SessionController interface {
	Enter(ctx context.Context, festival *domain.Festival)
	Leave(ctx context.Context)
	TogglePin(ctx context.Context, performer domain.Performer) (bool, error)
	QueryNearestFood(ctx context.Context) bool
	QueryNearestRestroom(ctx context.Context) bool
	CurrentNotifications() []domain.Notification
	Subscribe() (<-chan []domain.Notification, func())
	Pinned(ctx context.Context) ([]int, error)
	IsPinned(ctx context.Context, performerID int) (bool, error)
	State() domain.ContextState
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	if status >= 500 {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("error_type", errType),
			slog.String("message", message),
			slog.String("path", c.Request.URL.Path),
		)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

func notificationsResponse(ns []domain.Notification) NotificationsResponse {
	if ns == nil {
		ns = []domain.Notification{}
	}
	return NotificationsResponse{Notifications: ns}
}
