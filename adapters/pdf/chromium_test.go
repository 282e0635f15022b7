package enquirypdf

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

func chromeBinaryPath(t *testing.T) string {
	t.Helper()

	chromePath := os.Getenv("CHROME_BIN")
	if chromePath == "" {
		paths := []string{"google-chrome", "chromium", "chromium-browser"}
		for _, candidate := range paths {
			if path, err := exec.LookPath(candidate); err == nil {
				chromePath = path
				break
			}
		}
	}
	if chromePath == "" {
		t.Skip("chromium binary not found; set CHROME_BIN to run this test")
	}

	return chromePath
}

func TestParseLengthInches(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "1in", want: 1},
		{input: "25.4mm", want: 1},
		{input: "2.54cm", want: 1},
		{input: "72pt", want: 1},
		{input: "96px", want: 1},
		{input: "5pt", want: 5.0 / 72.0},
		{input: "2", want: 2},
	}

	for _, tc := range tests {
		got, err := parseLengthInches(tc.input)
		if err != nil {
			t.Fatalf("parseLengthInches(%q): %v", tc.input, err)
		}
		if diff := got - tc.want; diff > 0.0001 || diff < -0.0001 {
			t.Fatalf("parseLengthInches(%q): expected %f, got %f", tc.input, tc.want, got)
		}
	}

	if _, err := parseLengthInches("5furlongs"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestBuildPrintToPDFParams_PageSize(t *testing.T) {
	params, err := buildPrintToPDFParams(enquiry.PDFOptions{
		PageSize:        "A4",
		PrintBackground: boolPtr(true),
		MarginTop:       "10mm",
	})
	if err != nil {
		t.Fatalf("buildPrintToPDFParams: %v", err)
	}
	if params.PaperWidth == 0 || params.PaperHeight == 0 {
		t.Fatalf("expected paper size to be set, got width=%f height=%f", params.PaperWidth, params.PaperHeight)
	}
	if params.MarginTop == 0 {
		t.Fatalf("expected margin top to be set")
	}
	if !params.PrintBackground {
		t.Fatalf("expected print background true")
	}
}

func TestBuildPrintToPDFParams_RejectsUnknownPageSize(t *testing.T) {
	if _, err := buildPrintToPDFParams(enquiry.PDFOptions{PageSize: "TABLOID"}); err == nil {
		t.Fatalf("expected error for unsupported page size")
	}
}

func TestBuildPrintToPDFParams_ScaleBounds(t *testing.T) {
	if _, err := buildPrintToPDFParams(enquiry.PDFOptions{Scale: 5}); err == nil {
		t.Fatalf("expected error for out-of-range scale")
	}
	params, err := buildPrintToPDFParams(enquiry.PDFOptions{Scale: 1.0})
	if err != nil {
		t.Fatalf("buildPrintToPDFParams: %v", err)
	}
	if params.Scale != 1.0 {
		t.Fatalf("expected scale 1.0, got %f", params.Scale)
	}
}

func TestMergePDFOptions(t *testing.T) {
	base := enquiry.PDFOptions{
		PageSize:        "LETTER",
		PrintBackground: boolPtr(false),
		Scale:           0.9,
		MarginTop:       "10pt",
	}
	merged := mergePDFOptions(base, enquiry.PDFOptions{
		PageSize:  "A4",
		MarginTop: "5pt",
	})
	if merged.PageSize != "A4" {
		t.Fatalf("override page size lost, got %q", merged.PageSize)
	}
	if merged.MarginTop != "5pt" {
		t.Fatalf("override margin lost, got %q", merged.MarginTop)
	}
	if merged.Scale != 0.9 {
		t.Fatalf("base scale lost, got %f", merged.Scale)
	}
	if merged.PrintBackground == nil || *merged.PrintBackground {
		t.Fatalf("base print background lost")
	}
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	options := allocatorOptionsFromArgs([]string{"--no-sandbox", "disable-gpu", "lang=en", "", "--"})
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}
}

func TestChromiumEngine_Render_Smoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping chromium smoke test in short mode")
	}

	chromePath := chromeBinaryPath(t)

	engine := &ChromiumEngine{
		BrowserPath: chromePath,
		Headless:    true,
		Timeout:     10 * time.Second,
		Args:        []string{"--no-sandbox", "--disable-dev-shm-usage"},
	}

	doc := enquiry.BuildStudentDocument(enquiry.StudentSubmission{
		Name:             "Ram Bahadur",
		DOB:              "2002-04-12",
		Phone:            "9800000000",
		PermanentAddress: "Pokhara",
		CurrentAddress:   "Kathmandu",
		Father:           "Hari Bahadur",
		Mother:           "Sita Devi",
		College:          "NIC College",
		SchoolFee:        "700000",
	})

	pdf, err := engine.Render(context.Background(), RenderRequest{
		HTML:    enquiry.ComposeHTML(doc),
		Options: doc.Persona.RenderOptions(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Fatalf("expected pdf output, got %q", string(pdf[:4]))
	}
}
