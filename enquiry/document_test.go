package enquiry

import "testing"

func TestBuildStudentDocument_SectionOrder(t *testing.T) {
	doc := BuildStudentDocument(validStudent())

	want := []string{
		"STUDENT BASIC INFORMATION / विद्यार्थीको मूल जानकारी",
		"ADDRESS INFORMATION / पतासम्बन्धी जानकारी",
		"FAMILY INFORMATION / पारिवारिक जानकारी",
		"FINANCIAL INFORMATION / आर्थिक जानकारी",
		"COLLEGE & EDUCATION INFORMATION / कलेज र शिक्षा जानकारी",
		"LANGUAGE SCHOOL INFORMATION / भाषा स्कूल जानकारी",
		"AUTHORIZATION / अधिकार",
	}
	if len(doc.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(doc.Sections))
	}
	for i, title := range want {
		if doc.Sections[i].Title != title {
			t.Fatalf("section[%d]: expected %q, got %q", i, title, doc.Sections[i].Title)
		}
	}
	if doc.Title != "STUDENT ENQUIRY FORM" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.Persona != PersonaStudent {
		t.Fatalf("unexpected persona %q", doc.Persona)
	}
}

func TestBuildStudentDocument_SubtitleFallsBackToDefaultCollege(t *testing.T) {
	sub := validStudent()
	sub.College = ""
	doc := BuildStudentDocument(sub)
	if doc.Subtitle != DefaultCollegeName {
		t.Fatalf("expected default college subtitle, got %q", doc.Subtitle)
	}

	sub.College = "NIC College"
	doc = BuildStudentDocument(sub)
	if doc.Subtitle != "NIC College" {
		t.Fatalf("expected submitted college subtitle, got %q", doc.Subtitle)
	}
}

func TestBuildStudentDocument_BlankOptionalStaysBlank(t *testing.T) {
	sub := validStudent()
	sub.LivingExpenses = ""
	doc := BuildStudentDocument(sub)

	var found bool
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			if row.Label == "Living Expenses / जीवन खर्च" {
				found = true
				if row.Value != "" {
					t.Fatalf("blank field should render blank, got %q", row.Value)
				}
			}
		}
	}
	if !found {
		t.Fatalf("living expenses row missing from document")
	}
}

func TestBuildSponsorDocument(t *testing.T) {
	doc := BuildSponsorDocument(validSponsor())

	if doc.Title != "SPONSOR INQUIRY FORM / स्पोन्सर सोधपत्र" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.Subtitle != "" {
		t.Fatalf("sponsor document has no subtitle, got %q", doc.Subtitle)
	}
	want := []string{
		"BANK DETAILS / बैंक विवरण",
		"TRANSACTIONS / कारोबार",
		"BALANCE & ACCOUNTS / बैलन्स र खाता",
		"AUTHORIZATION / अधिकार",
	}
	if len(doc.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(doc.Sections))
	}
	for i, title := range want {
		if doc.Sections[i].Title != title {
			t.Fatalf("section[%d]: expected %q, got %q", i, title, doc.Sections[i].Title)
		}
	}
}

func TestPersonaRenderOptions(t *testing.T) {
	student := PersonaStudent.RenderOptions()
	if student.PageSize != "A4" {
		t.Fatalf("expected A4, got %q", student.PageSize)
	}
	if student.PrintBackground == nil || !*student.PrintBackground {
		t.Fatalf("expected print background on")
	}
	if student.Scale != 1.0 {
		t.Fatalf("expected scale 1.0, got %v", student.Scale)
	}
	for _, margin := range []string{student.MarginTop, student.MarginBottom, student.MarginLeft, student.MarginRight} {
		if margin != "5pt" {
			t.Fatalf("expected 5pt student margins, got %q", margin)
		}
	}

	sponsor := PersonaSponsor.RenderOptions()
	if sponsor.PageSize != "A4" {
		t.Fatalf("expected A4, got %q", sponsor.PageSize)
	}
	if sponsor.MarginTop != "1pt" || sponsor.MarginBottom != "1pt" {
		t.Fatalf("expected 1pt vertical sponsor margins, got %q/%q", sponsor.MarginTop, sponsor.MarginBottom)
	}
	if sponsor.MarginLeft != "5pt" || sponsor.MarginRight != "5pt" {
		t.Fatalf("expected 5pt horizontal sponsor margins, got %q/%q", sponsor.MarginLeft, sponsor.MarginRight)
	}
}

func TestPersonaAttachmentName(t *testing.T) {
	if got := PersonaStudent.AttachmentName(); got != "student-form.pdf" {
		t.Fatalf("unexpected student attachment name %q", got)
	}
	if got := PersonaSponsor.AttachmentName(); got != "sponsor-form.pdf" {
		t.Fatalf("unexpected sponsor attachment name %q", got)
	}
}
