package enquiry

// Bilingual labels are fixed at design time and never derived from payloads.

// StudentSections lists the student document sections in render order.
func StudentSections() []FieldSection[StudentSubmission] {
	return []FieldSection[StudentSubmission]{
		{
			Title: "STUDENT BASIC INFORMATION / विद्यार्थीको मूल जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "name", Label: "Student Name / विद्यार्थीको नाम", Value: func(s StudentSubmission) string { return s.Name }},
				{Name: "schoolFee", Label: "School Fee / स्कुल शुल्क", Value: func(s StudentSubmission) string { return s.SchoolFee }},
				{Name: "livingExpenses", Label: "Living Expenses / जीवन खर्च", Value: func(s StudentSubmission) string { return s.LivingExpenses }},
				{Name: "dob", Label: "Date of Birth / जन्म मिति", Value: func(s StudentSubmission) string { return s.DOB }},
				{Name: "phone", Label: "Contact Number / फोन नम्बर", Value: func(s StudentSubmission) string { return s.Phone }},
				{Name: "familyMembersCount", Label: "No. of Family Members / परिवारका सदस्यहरूको संख्या", Value: func(s StudentSubmission) string { return s.FamilyMembersCount }},
			},
		},
		{
			Title: "ADDRESS INFORMATION / पतासम्बन्धी जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "permanentAddress", Label: "Permanent Address / स्थायी ठेगाना", Value: func(s StudentSubmission) string { return s.PermanentAddress }},
				{Name: "currentAddress", Label: "Current Address / हालको ठेगाना", Value: func(s StudentSubmission) string { return s.CurrentAddress }},
			},
		},
		{
			Title: "FAMILY INFORMATION / पारिवारिक जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "father", Label: "Father's Name / बुबाको नाम", Value: func(s StudentSubmission) string { return s.Father }},
				{Name: "fatherAge", Label: "Father's Age / बुबाको उमेर", Value: func(s StudentSubmission) string { return s.FatherAge }},
				{Name: "fatherPhone", Label: "Father's Phone / बुबाको फोन", Value: func(s StudentSubmission) string { return s.FatherPhone }},
				{Name: "fatherProfession", Label: "Father's Profession / बुबाको काम", Value: func(s StudentSubmission) string { return s.FatherProfession }},
				{Name: "fatherAddress", Label: "Father's Address / बुबाको ठेगाना", Value: func(s StudentSubmission) string { return s.FatherAddress }},
				{Name: "mother", Label: "Mother's Name / आमाको नाम", Value: func(s StudentSubmission) string { return s.Mother }},
				{Name: "motherAge", Label: "Mother's Age / आमाको उमेर", Value: func(s StudentSubmission) string { return s.MotherAge }},
				{Name: "motherProfession", Label: "Mother's Profession / आमाको काम", Value: func(s StudentSubmission) string { return s.MotherProfession }},
				{Name: "motherAddress", Label: "Mother's Address / आमाको ठेगाना", Value: func(s StudentSubmission) string { return s.MotherAddress }},
			},
		},
		{
			Title: "FINANCIAL INFORMATION / आर्थिक जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "lastYearIncome", Label: "Last Year Income / गत वर्षको आम्दानी", Value: func(s StudentSubmission) string { return s.LastYearIncome }},
				{Name: "bankName", Label: "Bank Name / बैंकको नाम", Value: func(s StudentSubmission) string { return s.BankName }},
				{Name: "bankAccountHolder", Label: "Bank Account Holder / खातावालाको नाम", Value: func(s StudentSubmission) string { return s.BankAccountHolder }},
				{Name: "bankAddress", Label: "Bank Address / बैंकको ठेगाना", Value: func(s StudentSubmission) string { return s.BankAddress }},
			},
		},
		{
			Title: "COLLEGE & EDUCATION INFORMATION / कलेज र शिक्षा जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "college", Label: "School Name / स्कुलको नाम", Value: func(s StudentSubmission) string { return s.College }},
				{Name: "collegeRunning", Label: "College Year/Semester / कलेज चलिरहेको वर्ष", Value: func(s StudentSubmission) string { return s.CollegeRunning }},
				{Name: "workExperience", Label: "Work Experience / काम गरेको अनुभव", Value: func(s StudentSubmission) string { return s.WorkExperience }},
				{Name: "educationStatus", Label: "Education Status / शिक्षा स्थिति", Value: func(s StudentSubmission) string { return s.EducationStatus }},
			},
		},
		{
			Title: "LANGUAGE SCHOOL INFORMATION / भाषा स्कूल जानकारी",
			Fields: []Field[StudentSubmission]{
				{Name: "languageSchoolName", Label: "Language School Name / भाषा स्कूलको नाम", Value: func(s StudentSubmission) string { return s.LanguageSchoolName }},
				{Name: "languageSchoolJoiningDate", Label: "Joining Date / भाषा विद्यालय भर्ना मिति (YYYY-MM-DD)", Value: func(s StudentSubmission) string { return s.LanguageSchoolJoiningDate }},
				{Name: "languageSchoolAddress", Label: "Language School Address / भाषा स्कूलको ठेगाना", Value: func(s StudentSubmission) string { return s.LanguageSchoolAddress }},
				{Name: "plansAfterLanguageSchool", Label: "Plans After Language School / भाषा स्कूल पछिको योजना", Value: func(s StudentSubmission) string { return s.PlansAfterLanguageSchool }},
			},
		},
		{
			Title: "AUTHORIZATION / अधिकार",
			Fields: []Field[StudentSubmission]{
				{Name: "signedBy", Label: "Signed By / हस्ताक्षर गरेको", Value: func(s StudentSubmission) string { return s.SignedBy }},
				{Name: "signedDate", Label: "Signed Date / हस्ताक्षर गरेको मिति", Value: func(s StudentSubmission) string { return s.SignedDate }},
			},
		},
	}
}

// StudentRequired lists the student required fields in report order: the
// first blank field in this order names the validation failure.
func StudentRequired() []Field[StudentSubmission] {
	return []Field[StudentSubmission]{
		{Name: "name", Value: func(s StudentSubmission) string { return s.Name }},
		{Name: "dob", Value: func(s StudentSubmission) string { return s.DOB }},
		{Name: "phone", Value: func(s StudentSubmission) string { return s.Phone }},
		{Name: "permanentAddress", Value: func(s StudentSubmission) string { return s.PermanentAddress }},
		{Name: "currentAddress", Value: func(s StudentSubmission) string { return s.CurrentAddress }},
		{Name: "father", Value: func(s StudentSubmission) string { return s.Father }},
		{Name: "mother", Value: func(s StudentSubmission) string { return s.Mother }},
		{Name: "college", Value: func(s StudentSubmission) string { return s.College }},
		{Name: "schoolFee", Value: func(s StudentSubmission) string { return s.SchoolFee }},
	}
}

// SponsorSections lists the sponsor document sections in render order.
func SponsorSections() []FieldSection[SponsorSubmission] {
	return []FieldSection[SponsorSubmission]{
		{
			Title: "BANK DETAILS / बैंक विवरण",
			Fields: []Field[SponsorSubmission]{
				{Name: "bankName", Label: "बैंकको नाम के हो? / Bank Name", Value: func(s SponsorSubmission) string { return s.BankName }},
				{Name: "bankManagerName", Label: "बैंक म्यानेजरको नाम के हो? / Bank Manager Name", Value: func(s SponsorSubmission) string { return s.BankManagerName }},
				{Name: "accountHolderName", Label: "बैंक खातावालाको नाम के हो? / Account Holder Name", Value: func(s SponsorSubmission) string { return s.AccountHolderName }},
				{Name: "bankAddress", Label: "बैंकको ठेगाना के हो? / Bank Address", Value: func(s SponsorSubmission) string { return s.BankAddress }},
				{Name: "accountNumber", Label: "बैंक खाता नम्बर के हो? / Account Number", Value: func(s SponsorSubmission) string { return s.AccountNumber }},
				{Name: "accountType", Label: "खाताको प्रकार के हो? / Account Type", Value: func(s SponsorSubmission) string { return s.AccountType }},
				{Name: "accountOpenedDate", Label: "खाता कहिले खोलिएको हो? / Account Opened Date", Value: func(s SponsorSubmission) string { return s.AccountOpenedDate }},
			},
		},
		{
			Title: "TRANSACTIONS / कारोबार",
			Fields: []Field[SponsorSubmission]{
				{Name: "lockdownBusiness", Label: "लकडाउनको बेला कारोबार भएको थियो कि थिएन? / Business during lockdown", Value: func(s SponsorSubmission) string { return s.LockdownBusiness }},
				{Name: "monthlyTxnAmount", Label: "महिनाको कति जति रकम जम्मा तथा झिक्ने गर्नु हुन्छ? / Monthly deposit/withdraw amount", Value: func(s SponsorSubmission) string { return s.MonthlyTxnAmount }},
				{Name: "lastTransactionDate", Label: "अन्तिम कारोबार कहिले गर्नु भएको हो? / Last transaction date", Value: func(s SponsorSubmission) string { return s.LastTransactionDate }},
				{Name: "lastCheckToName", Label: "अन्तिम चेक कस्को नाममा काट्नु भएको थियो? / Last check issued to", Value: func(s SponsorSubmission) string { return s.LastCheckToName }},
			},
		},
		{
			Title: "BALANCE & ACCOUNTS / बैलन्स र खाता",
			Fields: []Field[SponsorSubmission]{
				{Name: "otherAccounts", Label: "अरु बैंकमा पनि खाता छ कि छैन? / Other accounts exist?", Value: func(s SponsorSubmission) string { return s.OtherAccounts }},
				{Name: "reasonOpenIfOther", Label: "यदि अरु खाता भए किन यसैमा खाता खोल्नुभयो? / Why opened this account if other accounts exist", Value: func(s SponsorSubmission) string { return s.ReasonOpenIfOther }},
				{Name: "currentBalance", Label: "हाल खातामा कति जति रकम छ? / Current balance", Value: func(s SponsorSubmission) string { return s.CurrentBalance }},
				{Name: "amountInBank", Label: "बैंक खातामा रहेको रकम कति हो? / Amount in bank account", Value: func(s SponsorSubmission) string { return s.AmountInBank }},
				{Name: "balanceCertificateDate", Label: "कहिले ब्यालेन्स सर्टिफिकेट निकाल्नु भएको थियो? / Balance certificate date", Value: func(s SponsorSubmission) string { return s.BalanceCertificateDate }},
				{Name: "interestFrequencyAndAmount", Label: "ब्याज कति–कति महिनामा आउँछ र कति आउँछ? / Interest frequency and amount", Value: func(s SponsorSubmission) string { return s.InterestFrequencyAndAmount }},
			},
		},
		{
			Title: "AUTHORIZATION / अधिकार",
			Fields: []Field[SponsorSubmission]{
				{Name: "sponsorSignedBy", Label: "स्पोन्सरको साइन कसले गरेको हो? / Sponsor signed by", Value: func(s SponsorSubmission) string { return s.SponsorSignedBy }},
				{Name: "sponsorSignedDate", Label: "कहिले र कुन मितिमा गरेको हो? / Sponsor signed date", Value: func(s SponsorSubmission) string { return s.SponsorSignedDate }},
			},
		},
	}
}

// SponsorRequired lists the sponsor required fields in report order.
func SponsorRequired() []Field[SponsorSubmission] {
	return []Field[SponsorSubmission]{
		{Name: "bankName", Value: func(s SponsorSubmission) string { return s.BankName }},
		{Name: "accountHolderName", Value: func(s SponsorSubmission) string { return s.AccountHolderName }},
		{Name: "accountNumber", Value: func(s SponsorSubmission) string { return s.AccountNumber }},
	}
}

// FieldNames returns every payload field name for a persona in section order.
func FieldNames(p Persona) []string {
	switch p {
	case PersonaStudent:
		return fieldNames(StudentSections())
	case PersonaSponsor:
		return fieldNames(SponsorSections())
	default:
		return nil
	}
}

// RequiredFieldNames returns the ordered required-field list for a persona.
func RequiredFieldNames(p Persona) []string {
	switch p {
	case PersonaStudent:
		return requiredNames(StudentRequired())
	case PersonaSponsor:
		return requiredNames(SponsorRequired())
	default:
		return nil
	}
}

func fieldNames[T any](sections []FieldSection[T]) []string {
	var names []string
	for _, section := range sections {
		for _, field := range section.Fields {
			names = append(names, field.Name)
		}
	}
	return names
}

func requiredNames[T any](fields []Field[T]) []string {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}
