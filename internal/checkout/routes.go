package checkout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/goaltrack-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.OptionalAuthMiddleware)
	r.HandleFunc("/", h.CreateSession)

	return r
}
