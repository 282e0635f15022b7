package enquiryapi

import (
	"fmt"
	"net/http"

	errorslib "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	enquirypdf "github.com/manutdmohit/bhagirathi-enquiry/adapters/pdf"
	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

// FailureMessage is the generic body returned for any failure that is not a
// missing required field. The underlying cause is logged, never echoed.
const FailureMessage = "Failed to generate PDF"

const (
	// DefaultStudentPath is the student generation endpoint.
	DefaultStudentPath = "/api/generate-pdf"
	// DefaultSponsorPath is the sponsor generation endpoint.
	DefaultSponsorPath = "/api/generate-sponsor-pdf"
)

// Config configures the shared enquiry API controller.
type Config struct {
	Engine       enquirypdf.Engine
	Logger       enquiry.Logger
	IDGenerator  func() string
	MaxBodyBytes int64
	StudentPath  string
	SponsorPath  string
}

// Controller exposes the two PDF generation handlers for multiple
// transports. It holds no per-request state: each request decodes its own
// submission, composes its own HTML, and drives its own render.
type Controller struct {
	engine       enquirypdf.Engine
	logger       enquiry.Logger
	idGenerator  func() string
	maxBodyBytes int64
	studentPath  string
	sponsorPath  string
}

// NewController creates a shared enquiry API controller.
func NewController(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = enquiry.NopLogger{}
	}
	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = uuid.NewString
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	studentPath := cfg.StudentPath
	if studentPath == "" {
		studentPath = DefaultStudentPath
	}
	sponsorPath := cfg.SponsorPath
	if sponsorPath == "" {
		sponsorPath = DefaultSponsorPath
	}
	return &Controller{
		engine:       cfg.Engine,
		logger:       logger,
		idGenerator:  idGenerator,
		maxBodyBytes: maxBody,
		studentPath:  studentPath,
		sponsorPath:  sponsorPath,
	}
}

// StudentPath returns the configured student endpoint path.
func (c *Controller) StudentPath() string {
	if c == nil {
		return DefaultStudentPath
	}
	return c.studentPath
}

// SponsorPath returns the configured sponsor endpoint path.
func (c *Controller) SponsorPath() string {
	if c == nil {
		return DefaultSponsorPath
	}
	return c.sponsorPath
}

// Serve routes generation endpoints using the shared controller.
func (c *Controller) Serve(req Request, res Response) {
	if res == nil {
		return
	}
	if c == nil || req == nil {
		writeJSON(res, http.StatusInternalServerError, ErrorResponse{Error: FailureMessage})
		return
	}

	switch req.Path() {
	case c.studentPath, c.sponsorPath:
	default:
		writeNotFound(res)
		return
	}

	if req.Method() != http.MethodPost {
		res.SetHeader("Allow", http.MethodPost)
		res.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if req.Path() == c.sponsorPath {
		c.handleSponsor(req, res)
		return
	}
	c.handleStudent(req, res)
}

func (c *Controller) handleStudent(req Request, res Response) {
	var sub enquiry.StudentSubmission
	if err := decodeBody(req.Body(), c.maxBodyBytes, &sub); err != nil {
		c.writeError(res, err)
		return
	}
	if err := enquiry.ValidateStudent(sub); err != nil {
		c.writeError(res, err)
		return
	}
	c.render(req, res, enquiry.BuildStudentDocument(sub))
}

func (c *Controller) handleSponsor(req Request, res Response) {
	var sub enquiry.SponsorSubmission
	if err := decodeBody(req.Body(), c.maxBodyBytes, &sub); err != nil {
		c.writeError(res, err)
		return
	}
	if err := enquiry.ValidateSponsor(sub); err != nil {
		c.writeError(res, err)
		return
	}
	c.render(req, res, enquiry.BuildSponsorDocument(sub))
}

func (c *Controller) render(req Request, res Response, doc enquiry.Document) {
	if c.engine == nil {
		c.writeError(res, enquiry.NewError(enquiry.KindInternal, "pdf engine not configured", nil))
		return
	}

	html := enquiry.ComposeHTML(doc)
	pdf, err := c.engine.Render(req.Context(), enquirypdf.RenderRequest{
		HTML:    html,
		Options: doc.Persona.RenderOptions(),
	})
	if err != nil {
		c.writeError(res, err)
		return
	}

	setDownloadHeaders(res, c.idGenerator(), doc.Persona.AttachmentName())
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(pdf); err != nil {
		c.logger.Errorf("pdf response write failed: %v", err)
	}
}

// writeError maps validation failures to a 400 naming the offending field
// and everything else to the generic 500 body.
func (c *Controller) writeError(res Response, err error) {
	ge := enquiry.AsGoError(err)
	if ge != nil && ge.Category == errorslib.CategoryValidation {
		writeJSON(res, http.StatusBadRequest, ErrorResponse{Error: ge.Message})
		return
	}
	c.logger.Errorf("pdf generation failed: %v", err)
	writeJSON(res, http.StatusInternalServerError, ErrorResponse{Error: FailureMessage})
}

func writeNotFound(res Response) {
	res.SetHeader("Content-Type", "text/plain; charset=utf-8")
	res.SetHeader("X-Content-Type-Options", "nosniff")
	res.WriteHeader(http.StatusNotFound)
	_, _ = res.Write([]byte("404 page not found\n"))
}

func writeJSON(res Response, status int, payload any) {
	_ = res.WriteJSON(status, payload)
}

func setDownloadHeaders(res Response, enquiryID, filename string) {
	res.SetHeader("Content-Type", "application/pdf")
	res.SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if enquiryID != "" {
		res.SetHeader("X-Enquiry-Id", enquiryID)
	}
}
