package enquiryrouter

import (
	"net/http"

	"github.com/goliatone/go-router"
	"github.com/manutdmohit/bhagirathi-enquiry/adapters/enquiryapi"
)

// Config configures the go-router adapter.
type Config = enquiryapi.Config

// Handler exposes the generation endpoints for go-router.
type Handler struct {
	controller *enquiryapi.Controller
}

// NewHandler creates a go-router handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{controller: enquiryapi.NewController(cfg)}
}

// RegisterRoutes registers the generation routes on a compatible router.
func (h *Handler) RegisterRoutes(r any) {
	registrar, ok := r.(routeRegistrar)
	if !ok {
		return
	}
	registrar.Post(h.studentPath(), h.Handle)
	registrar.Post(h.sponsorPath(), h.Handle)
}

// Handle executes the shared generation workflow.
func (h *Handler) Handle(c router.Context) error {
	if c == nil {
		return nil
	}
	if h == nil || h.controller == nil {
		return c.JSON(http.StatusInternalServerError, enquiryapi.ErrorResponse{Error: enquiryapi.FailureMessage})
	}
	h.controller.Serve(routerRequest{ctx: c}, routerResponse{ctx: c})
	return nil
}

func (h *Handler) studentPath() string {
	if h == nil || h.controller == nil {
		return enquiryapi.DefaultStudentPath
	}
	return h.controller.StudentPath()
}

func (h *Handler) sponsorPath() string {
	if h == nil || h.controller == nil {
		return enquiryapi.DefaultSponsorPath
	}
	return h.controller.SponsorPath()
}

type routeRegistrar interface {
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
}
