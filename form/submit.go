package form

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/manutdmohit/bhagirathi-enquiry/adapters/enquiryapi"
	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

// FailureBanner is shown when the generation endpoint reports any failure.
const FailureBanner = "PDF Generation Failed"

// ErrBusy reports a submit attempt while a previous one is still in flight.
// The in-flight request is neither canceled nor queued behind.
var ErrBusy = errors.New("form: submission already in flight")

// Result reports the outcome of one submit attempt. Exactly one of the three
// outcomes holds: FieldErrors is non-empty (blocked before any network
// call), Banner is set (endpoint failure, draft preserved for retry), or PDF
// holds the downloaded document.
type Result struct {
	Draft       Draft
	FieldErrors map[string]string
	Banner      string
	Filename    string
	PDF         []byte
}

// Submitter validates a draft and posts it to the persona's generation
// endpoint. A busy flag rejects overlapping submits for the same session.
type Submitter struct {
	Client  *http.Client
	BaseURL string
	Logger  enquiry.Logger

	busy atomic.Bool
}

// Submit runs the client pipeline: validate, post the full draft as JSON,
// and name the downloaded bytes from the identifying field. The returned
// error is ErrBusy or a local I/O problem; endpoint failures surface through
// Result.Banner.
func (s *Submitter) Submit(ctx context.Context, d Draft) (Result, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer s.busy.Store(false)

	validated, errs := d.Validate()
	if len(errs) > 0 {
		return Result{
			Draft:       validated,
			FieldErrors: errs,
			Banner:      invalidBanner(d.Persona()),
		}, nil
	}

	payload, err := validated.MarshalJSON()
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(d.Persona()), bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		s.logf("enquiry submit failed: %v", err)
		return Result{Draft: validated, Banner: FailureBanner}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logf("enquiry submit rejected: status %d", resp.StatusCode)
		return Result{Draft: validated, Banner: FailureBanner}, nil
	}

	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logf("enquiry download failed: %v", err)
		return Result{Draft: validated, Banner: FailureBanner}, nil
	}

	return Result{
		Draft:    validated,
		Filename: enquiry.DownloadFilename(validated.Identifier(), d.Persona()),
		PDF:      pdf,
	}, nil
}

// Save writes a successful result's PDF into dir under its derived filename.
func (r Result) Save(dir string) (string, error) {
	if len(r.PDF) == 0 {
		return "", errors.New("form: no pdf to save")
	}
	path := filepath.Join(dir, r.Filename)
	if err := os.WriteFile(path, r.PDF, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Submitter) endpoint(p enquiry.Persona) string {
	if p == enquiry.PersonaSponsor {
		return s.BaseURL + enquiryapi.DefaultSponsorPath
	}
	return s.BaseURL + enquiryapi.DefaultStudentPath
}

func (s *Submitter) logf(format string, args ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.Errorf(format, args...)
}

func invalidBanner(p enquiry.Persona) string {
	if p == enquiry.PersonaSponsor {
		return "Please fix required fields"
	}
	return "Please fix the highlighted errors."
}
