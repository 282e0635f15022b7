package enquiryhttp

import (
	"net/http"

	"github.com/manutdmohit/bhagirathi-enquiry/adapters/enquiryapi"
)

// Config configures the HTTP adapter.
type Config = enquiryapi.Config

// Handler exposes the generation endpoints over net/http.
type Handler struct {
	controller *enquiryapi.Controller
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{controller: enquiryapi.NewController(cfg)}
}

// RegisterRoutes registers handlers on a compatible router.
func (h *Handler) RegisterRoutes(router any) {
	switch r := router.(type) {
	case interface{ Handle(string, http.Handler) }:
		r.Handle(h.controller.StudentPath(), h)
		r.Handle(h.controller.SponsorPath(), h)
	case interface {
		HandleFunc(string, func(http.ResponseWriter, *http.Request))
	}:
		r.HandleFunc(h.controller.StudentPath(), h.ServeHTTP)
		r.HandleFunc(h.controller.SponsorPath(), h.ServeHTTP)
	}
}

// ServeHTTP routes generation endpoints.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	if h == nil || h.controller == nil {
		http.Error(w, enquiryapi.FailureMessage, http.StatusInternalServerError)
		return
	}
	h.controller.Serve(httpRequest{r: r}, httpResponse{w: w})
}
