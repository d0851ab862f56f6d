package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Mr-Jayed/TracON-Project1/internal/domain"
)

// DeliveryLister is satisfied by service.RelayService.
type DeliveryLister interface {
	Deliveries(ctx context.Context, userID string, limit int) ([]*domain.Delivery, error)
}

// DeliveryHandler exposes the delivery audit log.
type DeliveryHandler struct {
	svc DeliveryLister
}

func NewDeliveryHandler(svc DeliveryLister) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

// ListByUser handles GET /deliveries/{userID}
//
// @Summary  Most recent alarm deliveries for a user
// @Tags     deliveries
// @Produce  json
// @Param    userID  path      string  true   "External user id"
// @Param    limit   query     int     false  "Items to return (default 20, max 100)"
// @Success  200     {object}  map[string]any
// @Failure  404     {object}  map[string]string
// @Router   /deliveries/{userID} [get]
func (h *DeliveryHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit := 20
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	deliveries, err := h.svc.Deliveries(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "delivery log is not enabled")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to list deliveries")
		return
	}

	if deliveries == nil {
		deliveries = []*domain.Delivery{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"data":  deliveries,
		"limit": limit,
	})
}
