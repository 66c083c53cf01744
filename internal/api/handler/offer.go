// internal/api/handler/offer.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"wishfund/internal/api/types"
	"wishfund/internal/domain"
	"wishfund/internal/service"
	"wishfund/internal/util"
)

// OfferHandler handles HTTP requests related to offers.
type OfferHandler struct {
	responder
	contributions service.ContributionService
	offers        service.OfferService
	retry         RetryPolicy
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(contributions service.ContributionService, offers service.OfferService, retry RetryPolicy, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		responder:     responder{logger: logger},
		contributions: contributions,
		offers:        offers,
		retry:         retry,
	}
}

// CreateOfferRequest represents the request body for a contribution.
type CreateOfferRequest struct {
	ItemID int64           `json:"itemId"`
	Amount decimal.Decimal `json:"amount"`
	Hidden bool            `json:"hidden"`
}

// CreateOffer handles a contribution toward a wish.
// POST /offers
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var req CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, r, util.ErrInvalidInput)
		return
	}
	if req.ItemID <= 0 {
		h.respondWithError(w, r, util.ErrInvalidInput)
		return
	}

	var offer *domain.Offer
	err = retryTransient(r.Context(), h.retry, func() error {
		var cerr error
		offer, cerr = h.contributions.Contribute(r.Context(), req.ItemID, userID, req.Amount, req.Hidden)
		return cerr
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.logger.Info("Offer created",
		"offer_id", offer.ID,
		"wish_id", offer.WishID,
		"user_id", offer.UserID,
		"request_id", middleware.GetReqID(r.Context()),
	)
	h.respondWithJSON(w, http.StatusCreated, offer)
}

// GetOffer handles a single offer lookup.
// GET /offers/{offerID}
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	offerID, err := pathID(r, "offerID")
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	offer, err := h.offers.GetOffer(r.Context(), offerID, userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, offer)
}

// ListWishOffers handles the paginated offer listing of a wish.
// GET /wishes/{wishID}/offers
func (h *OfferHandler) ListWishOffers(w http.ResponseWriter, r *http.Request) {
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
	limit, offset := pagination(r)

	offers, total, err := h.offers.ListWishOffers(r.Context(), wishID, userID, limit, offset)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	if offers == nil {
		offers = []domain.Offer{}
	}

	h.respondWithJSON(w, http.StatusOK, types.PaginatedResponse[domain.Offer]{
		Data:       offers,
		Limit:      limit,
		Offset:     offset,
		TotalCount: total,
	})
}
