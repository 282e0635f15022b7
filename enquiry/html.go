package enquiry

import (
	"fmt"
	"html"
	"strings"
)

// ComposeHTML serializes a document into a complete standalone HTML page.
// Every label and value passes through html.EscapeString, so markup
// characters in user input render as literal text.
func ComposeHTML(doc Document) []byte {
	var b strings.Builder

	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\"/>\n<style>\n")
	b.WriteString(stylesheet(doc))
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<div class=\"header\">\n")
	b.WriteString("<h1>" + html.EscapeString(doc.Title) + "</h1>\n")
	if doc.Subtitle != "" {
		b.WriteString("<p>" + html.EscapeString(doc.Subtitle) + "</p>\n")
	}
	b.WriteString("</div>\n")

	for _, section := range doc.Sections {
		b.WriteString("<div class=\"section\">\n")
		b.WriteString("<div class=\"section-title\">" + html.EscapeString(section.Title) + "</div>\n")
		for _, row := range section.Rows {
			b.WriteString("<div class=\"field-row\">")
			b.WriteString("<div class=\"field-label\">" + html.EscapeString(row.Label) + "</div>")
			b.WriteString("<div class=\"field-value\">" + html.EscapeString(row.Value) + "</div>")
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func stylesheet(doc Document) string {
	if doc.Persona == PersonaSponsor {
		return sponsorStylesheet(doc.Page)
	}
	return studentStylesheet(doc.Page)
}

// The stylesheets are sized to the physical page so content past one page is
// clipped rather than reflowed. That is the documented layout constraint of
// the form, not something the serializer works around.

func studentStylesheet(page PageSetup) string {
	return fmt.Sprintf(`* { box-sizing: border-box; }
html { width: %[1]s; height: %[2]s; }
body {
  font-family: Arial, sans-serif;
  padding: 8px;
  line-height: 1.35;
  background: white;
  color: #333;
  margin: 0;
  font-size: 13px;
  width: %[1]s;
  height: %[2]s;
  overflow: hidden;
}
.header {
  text-align: center;
  margin-bottom: 6px;
  border-bottom: 1px solid #003d99;
  padding-bottom: 4px;
}
.header h1 { margin: 0; font-size: 20px; color: #003d99; }
.header p { margin: 2px 0; font-size: 14px; font-weight: bold; }
.section { margin: 3px 0; page-break-inside: avoid; }
.section-title {
  background: #003d99;
  color: white;
  padding: 2px 4px;
  font-weight: bold;
  font-size: 12px;
  margin-bottom: 3px;
  border-radius: 1px;
}
.field-row {
  display: flex;
  margin-bottom: 2px;
  padding: 1px 0;
  border-bottom: 0.5px solid #e0e0e0;
  font-size: 13px;
}
.field-label {
  font-weight: bold;
  width: 35%%;
  color: #003d99;
  padding-right: 4px;
  font-size: 12px;
}
.field-value {
  width: 65%%;
  word-wrap: break-word;
  background: #f9f9f9;
  padding: 1px 2px;
  font-size: 12px;
}
`, page.Width, page.Height)
}

func sponsorStylesheet(page PageSetup) string {
	return fmt.Sprintf(`* { box-sizing: border-box; }
html { width: %[1]s; height: %[2]s; }
body {
  font-family: Arial, sans-serif;
  padding: 8px;
  margin: 0;
  font-size: 12px;
  line-height: 1.35;
  width: %[1]s;
  height: %[2]s;
  overflow: hidden;
}
.header {
  text-align: center;
  margin-bottom: 6px;
  border-bottom: 2px solid #003d99;
  padding-bottom: 4px;
}
.header h1 { margin: 0; color: #003d99; font-size: 18px; }
.section { margin-bottom: 4px; }
.section-title {
  background: #003d99;
  color: #fff;
  padding: 3px 5px;
  font-size: 13px;
  margin-bottom: 4px;
  font-weight: bold;
}
.field-row {
  display: flex;
  margin-bottom: 2px;
  padding: 2px 0;
  border-bottom: 1px solid #e0e0e0;
  font-size: 12px;
}
.field-label {
  width: 38%%;
  font-weight: bold;
  color: #003d99;
  padding-right: 4px;
  font-size: 12px;
}
.field-value {
  width: 62%%;
  background: #f9f9f9;
  padding: 2px 4px;
  font-size: 12px;
  word-break: break-word;
}
`, page.Width, page.Height)
}
