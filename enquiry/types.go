package enquiry

// Persona identifies one of the two enquiry form kinds.
type Persona string

const (
	PersonaStudent Persona = "student"
	PersonaSponsor Persona = "sponsor"
)

// AttachmentName returns the fixed Content-Disposition filename for a persona.
func (p Persona) AttachmentName() string {
	return string(p) + "-form.pdf"
}

// StudentSubmission is one student enquiry, request-scoped and never stored.
// Field names follow the wire payload.
type StudentSubmission struct {
	Name                      string `json:"name"`
	DOB                       string `json:"dob"`
	Phone                     string `json:"phone"`
	PermanentAddress          string `json:"permanentAddress"`
	CurrentAddress            string `json:"currentAddress"`
	Father                    string `json:"father"`
	Mother                    string `json:"mother"`
	College                   string `json:"college"`
	SchoolFee                 string `json:"schoolFee"`
	LivingExpenses            string `json:"livingExpenses"`
	WorkExperience            string `json:"workExperience"`
	CollegeRunning            string `json:"collegeRunning"`
	MotherAge                 string `json:"motherAge"`
	MotherProfession          string `json:"motherProfession"`
	MotherAddress             string `json:"motherAddress"`
	FatherAge                 string `json:"fatherAge"`
	FatherPhone               string `json:"fatherPhone"`
	FatherAddress             string `json:"fatherAddress"`
	FatherProfession          string `json:"fatherProfession"`
	LastYearIncome            string `json:"lastYearIncome"`
	BankName                  string `json:"bankName"`
	BankAccountHolder         string `json:"bankAccountHolder"`
	BankAddress               string `json:"bankAddress"`
	EducationStatus           string `json:"educationStatus"`
	LanguageSchoolName        string `json:"languageSchoolName"`
	LanguageSchoolJoiningDate string `json:"languageSchoolJoiningDate"`
	LanguageSchoolAddress     string `json:"languageSchoolAddress"`
	FamilyMembersCount        string `json:"familyMembersCount"`
	PlansAfterLanguageSchool  string `json:"plansAfterLanguageSchool"`
	SignedBy                  string `json:"signedBy"`
	SignedDate                string `json:"signedDate"`
}

// SponsorSubmission is one financial-sponsor enquiry.
type SponsorSubmission struct {
	BankName                   string `json:"bankName"`
	BankManagerName            string `json:"bankManagerName"`
	AccountHolderName          string `json:"accountHolderName"`
	BankAddress                string `json:"bankAddress"`
	AccountNumber              string `json:"accountNumber"`
	AccountType                string `json:"accountType"`
	AccountOpenedDate          string `json:"accountOpenedDate"`
	LockdownBusiness           string `json:"lockdownBusiness"`
	MonthlyTxnAmount           string `json:"monthlyTxnAmount"`
	LastTransactionDate        string `json:"lastTransactionDate"`
	OtherAccounts              string `json:"otherAccounts"`
	ReasonOpenIfOther          string `json:"reasonOpenIfOther"`
	CurrentBalance             string `json:"currentBalance"`
	AmountInBank               string `json:"amountInBank"`
	LastCheckToName            string `json:"lastCheckToName"`
	BalanceCertificateDate     string `json:"balanceCertificateDate"`
	InterestFrequencyAndAmount string `json:"interestFrequencyAndAmount"`
	SponsorSignedBy            string `json:"sponsorSignedBy"`
	SponsorSignedDate          string `json:"sponsorSignedDate"`
}

// Field binds a payload field name and its bilingual label to an accessor.
// Validation and document composition iterate fields in declaration order
// instead of reflecting over the submission.
type Field[T any] struct {
	Name  string
	Label string
	Value func(T) string
}

// FieldSection groups fields under a document section title.
type FieldSection[T any] struct {
	Title  string
	Fields []Field[T]
}

// PDFOptions configures the headless PDF engine.
type PDFOptions struct {
	PageSize        string
	PrintBackground *bool
	Scale           float64
	MarginTop       string
	MarginBottom    string
	MarginLeft      string
	MarginRight     string
}

// PageSetup fixes the physical page the document stylesheet is sized for.
type PageSetup struct {
	Width  string
	Height string
}

// Logger is the minimal logging interface used across the pipeline.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
