package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const sseEventNotifications = "notifications"

type NotificationHandler struct {
	session SessionController
}

func NewNotificationHandler(session SessionController) *NotificationHandler {
	return &NotificationHandler{
		session: session,
	}
}

type ProximityResponse struct {
	Posted bool `json:"posted"`
	NotificationsResponse
}

func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, notificationsResponse(h.session.CurrentNotifications()))
}

// Stream sends the full notification set as a server-sent event after every
// store mutation, starting with the current set.
func (h *NotificationHandler) Stream(c *gin.Context) {
	updates, unsubscribe := h.session.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	done := c.Request.Context().Done()

	c.Stream(func(_ io.Writer) bool {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent(sseEventNotifications, notificationsResponse(snapshot))
			return true
		case <-done:
			return false
		}
	})
}

func (h *NotificationHandler) QueryNearestFood(c *gin.Context) {
	h.respondProximity(c, h.session.QueryNearestFood)
}

func (h *NotificationHandler) QueryNearestRestroom(c *gin.Context) {
	h.respondProximity(c, h.session.QueryNearestRestroom)
}

func (h *NotificationHandler) respondProximity(c *gin.Context, query func(context.Context) bool) {
	posted := query(c.Request.Context())
	c.JSON(http.StatusOK, ProximityResponse{
		Posted:                posted,
		NotificationsResponse: notificationsResponse(h.session.CurrentNotifications()),
	})
}
