package enquiry

import (
	"errors"
	"testing"
)

func validStudent() StudentSubmission {
	return StudentSubmission{
		Name:             "Ram Bahadur",
		DOB:              "2002-04-12",
		Phone:            "9800000000",
		PermanentAddress: "Pokhara",
		CurrentAddress:   "Kathmandu",
		Father:           "Hari Bahadur",
		Mother:           "Sita Devi",
		College:          "NIC College",
		SchoolFee:        "700000",
	}
}

func validSponsor() SponsorSubmission {
	return SponsorSubmission{
		BankName:          "NIC Asia",
		AccountHolderName: "Jane Doe",
		AccountNumber:     "12345",
	}
}

func TestValidateStudent_Valid(t *testing.T) {
	if err := ValidateStudent(validStudent()); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}
}

func TestValidateStudent_ReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StudentSubmission)
		want   string
	}{
		{
			name:   "missing name",
			mutate: func(s *StudentSubmission) { s.Name = "" },
			want:   "Missing field: name",
		},
		{
			name:   "whitespace only counts as missing",
			mutate: func(s *StudentSubmission) { s.Phone = "   " },
			want:   "Missing field: phone",
		},
		{
			name: "first missing in report order wins",
			mutate: func(s *StudentSubmission) {
				s.DOB = ""
				s.SchoolFee = ""
			},
			want: "Missing field: dob",
		},
		{
			name:   "missing school fee",
			mutate: func(s *StudentSubmission) { s.SchoolFee = "" },
			want:   "Missing field: schoolFee",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub := validStudent()
			tc.mutate(&sub)

			err := ValidateStudent(sub)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var ee *EnquiryError
			if !errors.As(err, &ee) {
				t.Fatalf("expected *EnquiryError, got %T", err)
			}
			if ee.Kind != KindValidation {
				t.Fatalf("expected validation kind, got %s", ee.Kind)
			}
			if ee.Msg != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, ee.Msg)
			}
		})
	}
}

func TestValidateStudent_OptionalFieldsMayBeBlank(t *testing.T) {
	sub := validStudent()
	sub.LivingExpenses = ""
	sub.FatherPhone = ""
	sub.PlansAfterLanguageSchool = ""

	if err := ValidateStudent(sub); err != nil {
		t.Fatalf("optional fields should not fail validation: %v", err)
	}
}

func TestValidateSponsor(t *testing.T) {
	if err := ValidateSponsor(validSponsor()); err != nil {
		t.Fatalf("expected valid submission, got %v", err)
	}

	sub := validSponsor()
	sub.AccountHolderName = " "
	err := ValidateSponsor(sub)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var ee *EnquiryError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *EnquiryError, got %T", err)
	}
	if ee.Field != "accountHolderName" {
		t.Fatalf("expected accountHolderName, got %q", ee.Field)
	}
	if ee.Msg != "Missing field: accountHolderName" {
		t.Fatalf("unexpected message %q", ee.Msg)
	}
}

func TestRequiredFieldNames_Order(t *testing.T) {
	wantStudent := []string{
		"name", "dob", "phone", "permanentAddress", "currentAddress",
		"father", "mother", "college", "schoolFee",
	}
	gotStudent := RequiredFieldNames(PersonaStudent)
	if len(gotStudent) != len(wantStudent) {
		t.Fatalf("expected %d required student fields, got %d", len(wantStudent), len(gotStudent))
	}
	for i, name := range wantStudent {
		if gotStudent[i] != name {
			t.Fatalf("student required[%d]: expected %q, got %q", i, name, gotStudent[i])
		}
	}

	wantSponsor := []string{"bankName", "accountHolderName", "accountNumber"}
	gotSponsor := RequiredFieldNames(PersonaSponsor)
	if len(gotSponsor) != len(wantSponsor) {
		t.Fatalf("expected %d required sponsor fields, got %d", len(wantSponsor), len(gotSponsor))
	}
	for i, name := range wantSponsor {
		if gotSponsor[i] != name {
			t.Fatalf("sponsor required[%d]: expected %q, got %q", i, name, gotSponsor[i])
		}
	}
}
