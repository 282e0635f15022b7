package enquiry

import (
	"strings"
	"testing"
)

func TestComposeHTML_EscapesUserInput(t *testing.T) {
	sub := validStudent()
	sub.Name = `<script>alert("x")</script>`
	sub.College = "Tom & Jerry College"

	html := string(ComposeHTML(BuildStudentDocument(sub)))

	if strings.Contains(html, "<script>") {
		t.Fatalf("markup in user input must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in output")
	}
	if !strings.Contains(html, "Tom &amp; Jerry College") {
		t.Fatalf("expected escaped ampersand in subtitle")
	}
}

func TestComposeHTML_Deterministic(t *testing.T) {
	sub := validStudent()
	first := ComposeHTML(BuildStudentDocument(sub))
	second := ComposeHTML(BuildStudentDocument(sub))
	if string(first) != string(second) {
		t.Fatalf("identical submissions must produce identical html")
	}
}

func TestComposeHTML_NoPlaceholderText(t *testing.T) {
	sub := validStudent()
	sub.LivingExpenses = ""
	sub.FatherPhone = ""
	html := string(ComposeHTML(BuildStudentDocument(sub)))

	for _, placeholder := range []string{"undefined", "null", "N/A"} {
		if strings.Contains(html, placeholder) {
			t.Fatalf("blank fields must render blank, found %q", placeholder)
		}
	}
}

func TestComposeHTML_PageSizing(t *testing.T) {
	student := string(ComposeHTML(BuildStudentDocument(validStudent())))
	if !strings.Contains(student, "width: 8.5in") || !strings.Contains(student, "height: 11in") {
		t.Fatalf("student stylesheet must size to 8.5in x 11in")
	}
	if !strings.Contains(student, "overflow: hidden") {
		t.Fatalf("student stylesheet must clip overflow")
	}
	if !strings.Contains(student, "width: 35%") || !strings.Contains(student, "width: 65%") {
		t.Fatalf("student rows must use the 35/65 label/value split")
	}

	sponsor := string(ComposeHTML(BuildSponsorDocument(validSponsor())))
	if !strings.Contains(sponsor, "width: 8.27in") || !strings.Contains(sponsor, "height: 11.69in") {
		t.Fatalf("sponsor stylesheet must size to 8.27in x 11.69in")
	}
	if !strings.Contains(sponsor, "width: 38%") || !strings.Contains(sponsor, "width: 62%") {
		t.Fatalf("sponsor rows must use the 38/62 label/value split")
	}
}

func TestComposeHTML_ContainsAllSectionsAndValues(t *testing.T) {
	sub := validSponsor()
	sub.BankManagerName = "Hari Prasad"
	html := string(ComposeHTML(BuildSponsorDocument(sub)))

	for _, want := range []string{
		"SPONSOR INQUIRY FORM / स्पोन्सर सोधपत्र",
		"BANK DETAILS / बैंक विवरण",
		"NIC Asia",
		"Jane Doe",
		"12345",
		"Hari Prasad",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in rendered html", want)
		}
	}
}
