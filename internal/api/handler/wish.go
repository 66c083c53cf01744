// internal/api/handler/wish.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"wishfund/internal/service"
	"wishfund/internal/util"
)

// WishHandler handles HTTP requests related to wishes.
type WishHandler struct {
	responder
	wishes service.WishService
}

// NewWishHandler creates a new WishHandler.
func NewWishHandler(wishes service.WishService, logger *slog.Logger) *WishHandler {
	return &WishHandler{
		responder: responder{logger: logger},
		wishes:    wishes,
	}
}

// CreateWishRequest represents the request body for a new wish.
type CreateWishRequest struct {
	Name        string          `json:"name"`
	Link        string          `json:"link"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// CreateWish handles wish creation for the caller.
// POST /wishes
func (h *WishHandler) CreateWish(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var req CreateWishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, r, util.ErrInvalidInput)
		return
	}

	wish, err := h.wishes.CreateWish(r.Context(), userID, service.CreateWishInput{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusCreated, wish)
}

// GetWish handles a single wish lookup.
// GET /wishes/{wishID}
func (h *WishHandler) GetWish(w http.ResponseWriter, r *http.Request) {
	wishID, err := pathID(r, "wishID")
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	wish, err := h.wishes.GetWish(r.Context(), wishID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, wish)
}

// UpdateWishRequest represents the request body for a wish update. Raised is
// decoded only to reject clients that try to set it.
type UpdateWishRequest struct {
	Price  *decimal.Decimal `json:"price"`
	Raised *decimal.Decimal `json:"raised"`
}

// UpdateWish handles a price change by the owner.
// PATCH /wishes/{wishID}
func (h *WishHandler) UpdateWish(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	wishID, err := pathID(r, "wishID")
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var req UpdateWishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, r, util.ErrInvalidInput)
		return
	}
	if req.Raised != nil {
		h.respondWithError(w, r, util.ErrRaisedManaged)
		return
	}
	if req.Price == nil {
		h.respondWithError(w, r, util.ErrInvalidInput)
		return
	}

	wish, err := h.wishes.UpdateWishPrice(r.Context(), wishID, userID, *req.Price)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, wish)
}
