// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wishfund/internal/api/handler"
	apimw "wishfund/internal/api/middleware"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(offerHandler *handler.OfferHandler, wishHandler *handler.WishHandler) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.Identity)

		r.Route("/offers", func(r chi.Router) {
			r.Post("/", offerHandler.CreateOffer)
			r.Get("/{offerID}", offerHandler.GetOffer)
		})

		r.Route("/wishes", func(r chi.Router) {
			r.Post("/", wishHandler.CreateWish)
			r.Get("/{wishID}", wishHandler.GetWish)
			r.Patch("/{wishID}", wishHandler.UpdateWish)
			r.Get("/{wishID}/offers", offerHandler.ListWishOffers)
		})
	})

	return r
}
