package enquiry

// DefaultCollegeName is the subtitle used when a student leaves the college
// field blank.
const DefaultCollegeName = "FUTABA COLLEGE OF FOREIGN LANGUAGES"

// Document is the structured form of a rendered enquiry: an ordered list of
// sections, each an ordered list of label/value rows. Values are raw text;
// escaping happens in the HTML serializer.
type Document struct {
	Persona  Persona
	Title    string
	Subtitle string
	Page     PageSetup
	Sections []DocumentSection
}

// DocumentSection is a named group of label/value rows.
type DocumentSection struct {
	Title string
	Rows  []DocumentRow
}

// DocumentRow is one label/value line in a section.
type DocumentRow struct {
	Label string
	Value string
}

// BuildStudentDocument maps a student submission onto the fixed document
// layout. Blank fields stay blank; no placeholder text is ever substituted.
func BuildStudentDocument(sub StudentSubmission) Document {
	subtitle := sub.College
	if subtitle == "" {
		subtitle = DefaultCollegeName
	}
	return Document{
		Persona:  PersonaStudent,
		Title:    "STUDENT ENQUIRY FORM",
		Subtitle: subtitle,
		Page:     PageSetup{Width: "8.5in", Height: "11in"},
		Sections: buildSections(sub, StudentSections()),
	}
}

// BuildSponsorDocument maps a sponsor submission onto the fixed document
// layout.
func BuildSponsorDocument(sub SponsorSubmission) Document {
	return Document{
		Persona:  PersonaSponsor,
		Title:    "SPONSOR INQUIRY FORM / स्पोन्सर सोधपत्र",
		Page:     PageSetup{Width: "8.27in", Height: "11.69in"},
		Sections: buildSections(sub, SponsorSections()),
	}
}

func buildSections[T any](sub T, sections []FieldSection[T]) []DocumentSection {
	out := make([]DocumentSection, 0, len(sections))
	for _, section := range sections {
		rows := make([]DocumentRow, 0, len(section.Fields))
		for _, field := range section.Fields {
			value := ""
			if field.Value != nil {
				value = field.Value(sub)
			}
			rows = append(rows, DocumentRow{Label: field.Label, Value: value})
		}
		out = append(out, DocumentSection{Title: section.Title, Rows: rows})
	}
	return out
}

// RenderOptions returns the fixed PDF engine options for a persona: A4 print
// format, background graphics on, 100% scale, and the persona's margins.
func (p Persona) RenderOptions() PDFOptions {
	printBackground := true
	opts := PDFOptions{
		PageSize:        "A4",
		PrintBackground: &printBackground,
		Scale:           1.0,
	}
	switch p {
	case PersonaSponsor:
		opts.MarginTop = "1pt"
		opts.MarginBottom = "1pt"
		opts.MarginLeft = "5pt"
		opts.MarginRight = "5pt"
	default:
		opts.MarginTop = "5pt"
		opts.MarginBottom = "5pt"
		opts.MarginLeft = "5pt"
		opts.MarginRight = "5pt"
	}
	return opts
}
