package enquiry

import "testing"

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		persona    Persona
		want       string
	}{
		{"plain name", "Ram Bahadur", PersonaStudent, "Ram Bahadur-form.pdf"},
		{"blank falls back to persona", "", PersonaStudent, "student-form.pdf"},
		{"whitespace falls back to persona", "   ", PersonaSponsor, "sponsor-form.pdf"},
		{"slashes flattened", "a/b\\c", PersonaStudent, "a_b_c-form.pdf"},
		{"quotes stripped", `Jane "JD" Doe`, PersonaSponsor, "Jane JD Doe-form.pdf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DownloadFilename(tc.identifier, tc.persona); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
