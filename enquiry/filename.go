package enquiry

import "strings"

const downloadSuffix = "-form.pdf"

// DownloadFilename derives the browser-side download name from an
// identifying field, falling back to the persona literal when the field is
// blank: `<identifier>-form.pdf`.
func DownloadFilename(identifier string, persona Persona) string {
	name := sanitizeFilename(identifier)
	if name == "" {
		name = string(persona)
	}
	return name + downloadSuffix
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}
