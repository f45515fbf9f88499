package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/service/catalog"
)

type PinHandler struct {
	catalog *catalog.Catalog
	session SessionController
}

func NewPinHandler(cat *catalog.Catalog, session SessionController) *PinHandler {
	return &PinHandler{
		catalog: cat,
		session: session,
	}
}

type PinResponse struct {
	PerformerID int  `json:"performer_id"`
	Pinned      bool `json:"pinned"`
}

type PinsResponse struct {
	Pinned []int `json:"pinned"`
}

func (h *PinHandler) TogglePin(c *gin.Context) {
	performer, ok := h.performer(c)
	if !ok {
		return
	}

	pinned, err := h.session.TogglePin(c.Request.Context(), performer)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to toggle pin")
		return
	}

	c.JSON(http.StatusOK, PinResponse{
		PerformerID: performer.ID,
		Pinned:      pinned,
	})
}

func (h *PinHandler) PinStatus(c *gin.Context) {
	performer, ok := h.performer(c)
	if !ok {
		return
	}

	pinned, err := h.session.IsPinned(c.Request.Context(), performer.ID)
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to check pin")
		return
	}

	c.JSON(http.StatusOK, PinResponse{
		PerformerID: performer.ID,
		Pinned:      pinned,
	})
}

// performer resolves the performerID path parameter, writing the error
// response itself when it cannot.
func (h *PinHandler) performer(c *gin.Context) (domain.Performer, bool) {
	id, err := strconv.Atoi(c.Param("performerID"))
	if err != nil {
		respondError(c, http.StatusBadRequest, errTypeInvalidID, "performer id must be an integer")
		return domain.Performer{}, false
	}

	performer, err := h.catalog.Performer(id)
	if err != nil {
		if errors.Is(err, domain.ErrPerformerNotFound) {
			respondError(c, http.StatusNotFound, errTypeNotFound, err.Error())
			return domain.Performer{}, false
		}
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to look up performer")
		return domain.Performer{}, false
	}
	return performer, true
}

func (h *PinHandler) ListPins(c *gin.Context) {
	ids, err := h.session.Pinned(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, errTypeInternal, "failed to list pins")
		return
	}
	if ids == nil {
		ids = []int{}
	}

	c.JSON(http.StatusOK, PinsResponse{Pinned: ids})
}
