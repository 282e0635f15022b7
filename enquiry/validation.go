package enquiry

import "strings"

// ValidateRequired checks the ordered required-field list against a
// submission and reports the first field whose trimmed value is empty.
// The check is trim-based on both client and server: whitespace-only input
// never passes.
func ValidateRequired[T any](sub T, required []Field[T]) error {
	for _, field := range required {
		if field.Value == nil {
			continue
		}
		if strings.TrimSpace(field.Value(sub)) == "" {
			return NewMissingFieldError(field.Name)
		}
	}
	return nil
}

// ValidateStudent validates a student submission against its required set.
func ValidateStudent(sub StudentSubmission) error {
	return ValidateRequired(sub, StudentRequired())
}

// ValidateSponsor validates a sponsor submission against its required set.
func ValidateSponsor(sub SponsorSubmission) error {
	return ValidateRequired(sub, SponsorRequired())
}
