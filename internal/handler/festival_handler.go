package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
)

type FestivalHandler struct {
	catalog *catalog.Catalog
	session SessionController
}

func NewFestivalHandler(cat *catalog.Catalog, session SessionController) *FestivalHandler {
	return &FestivalHandler{
		catalog: cat,
		session: session,
	}
}

type FestivalsResponse struct {
	Festivals []domain.Festival `json:"festivals"`
}

func (h *FestivalHandler) ListFestivals(c *gin.Context) {
	c.JSON(http.StatusOK, FestivalsResponse{Festivals: h.catalog.Festivals})
}

func (h *FestivalHandler) EnterFestival(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("festivalID"))
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeInvalidID, "festival id must be an integer")
		return
	}

	festival, err := h.catalog.Festival(id)
	if err != nil {
		if errors.Is(err, domain.ErrFestivalNotFound) {
			respondError(c, http.StatusNotFound, errTypeNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to look up festival")
		return
	}

	h.session.Enter(c.Request.Context(), &festival)
	c.JSON(http.StatusOK, h.session.State())
}

// EnterNearest activates the festival with the smallest advertised distance.
func (h *FestivalHandler) EnterNearest(c *gin.Context) {
	ctx := c.Request.Context()

	festival, err := h.catalog.Nearest()
	if err != nil {
		if errors.Is(err, catalog.ErrNoMeasurableFestival) {
			respondError(c, http.StatusNotFound, errTypeNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to find nearest festival")
		return
	}

	slog.InfoContext(ctx, "nearest festival selected",
		slog.Int("festival_id", festival.ID),
		slog.String("distance", festival.Distance),
	)

	h.session.Enter(ctx, &festival)
	c.JSON(http.StatusOK, h.session.State())
}

func (h *FestivalHandler) Leave(c *gin.Context) {
	h.session.Leave(c.Request.Context())
	c.JSON(http.StatusOK, h.session.State())
}

func (h *FestivalHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}
