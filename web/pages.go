// Package web serves the browser-facing enquiry forms. Each page is a
// single pongo2 template fed with the field groups that the PDF documents
// are built from, so the form and the generated PDF never drift apart.
package web

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/flosch/pongo2/v6"
	router "github.com/goliatone/go-router"

	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

//go:embed templates/form.html
var formTemplateSource string

var formTemplate = pongo2.Must(pongo2.FromString(formTemplateSource))

// PageField is one input on a form page.
type PageField struct {
	Name        string
	Label       string
	Textarea    bool
	Placeholder string
}

// PageGroup is a titled group of inputs.
type PageGroup struct {
	Title  string
	Fields []PageField
}

// Page holds everything the form template needs for one persona.
type Page struct {
	Title      string
	Heading    string
	Endpoint   string
	Identifier string
	Fallback   string
	Banner     string
	Required   []string
	Groups     []PageGroup
}

// StudentPage describes the student enquiry form.
func StudentPage(endpoint string) Page {
	return Page{
		Title:      "Student Enquiry Form",
		Heading:    "STUDENT ENQUIRY FORM",
		Endpoint:   endpoint,
		Identifier: "name",
		Fallback:   "student",
		Banner:     "Please fix the highlighted errors.",
		Required:   enquiry.RequiredFieldNames(enquiry.PersonaStudent),
		Groups:     groupsFromSections(enquiry.StudentSections(), map[string]bool{"plansAfterLanguageSchool": true}),
	}
}

// SponsorPage describes the sponsor enquiry form.
func SponsorPage(endpoint string) Page {
	return Page{
		Title:      "Sponsor Inquiry Form",
		Heading:    "SPONSOR INQUIRY FORM / स्पोन्सर सोधपत्र",
		Endpoint:   endpoint,
		Identifier: "accountHolderName",
		Fallback:   "sponsor",
		Banner:     "Please fix required fields",
		Required:   enquiry.RequiredFieldNames(enquiry.PersonaSponsor),
		Groups:     groupsFromSections(enquiry.SponsorSections(), nil),
	}
}

func groupsFromSections[T any](sections []enquiry.FieldSection[T], textarea map[string]bool) []PageGroup {
	groups := make([]PageGroup, 0, len(sections))
	for _, sec := range sections {
		group := PageGroup{Title: sec.Title, Fields: make([]PageField, 0, len(sec.Fields))}
		for _, f := range sec.Fields {
			group.Fields = append(group.Fields, PageField{
				Name:     f.Name,
				Label:    f.Label,
				Textarea: textarea[f.Name],
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// Render executes the form template for the given page.
func Render(page Page) ([]byte, error) {
	required, err := json.Marshal(page.Required)
	if err != nil {
		return nil, err
	}
	out, err := formTemplate.ExecuteBytes(pongo2.Context{
		"title":          page.Title,
		"heading":        page.Heading,
		"endpoint":       page.Endpoint,
		"identifier":     page.Identifier,
		"fallback":       page.Fallback,
		"invalid_banner": page.Banner,
		"required_json":  string(required),
		"groups":         page.Groups,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Handler returns a route handler that serves the rendered page.
func Handler(page Page) router.HandlerFunc {
	return func(c router.Context) error {
		out, err := Render(page)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return c.Send([]byte("page unavailable"))
		}
		c.SetHeader("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		return c.Send(out)
	}
}
