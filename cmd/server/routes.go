package main

import (
	"net/http"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/categories"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/products"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/shell"
)

func RegisterRoutes(mux *http.ServeMux, s *shell.Shell, ch *categories.CategoryHandler, ph *products.ProductHandler) {
	s.Register(mux)

	mux.HandleFunc("GET /api/categories", ch.HandleGetAll)
	mux.HandleFunc("POST /api/categories", ch.HandleCreate)
	mux.HandleFunc("DELETE /api/categories/{id}", ch.HandleDelete)

	mux.HandleFunc("GET /api/products", ph.HandleGetAll)
	mux.HandleFunc("POST /api/products", ph.HandleCreate)
	mux.HandleFunc("DELETE /api/products/{id}", ph.HandleDelete)
}
