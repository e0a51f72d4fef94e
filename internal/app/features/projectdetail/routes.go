package projectdetail

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDetail)
	r.Get("/{slug}", h.ServeDetail)
	return r
}
