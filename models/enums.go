package models

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type StudentType string

const (
	StudentTypeSchool  StudentType = "SCHOOL"
	StudentTypeCollege StudentType = "COLLEGE"
)

func (s StudentType) IsValid() bool {
	return s == StudentTypeSchool || s == StudentTypeCollege
}

type Committee string

const (
	CommitteeUNHRC                Committee = "UNHRC"
	CommitteeUNGADISEC            Committee = "UNGA_DISEC"
	CommitteeECOSOC               Committee = "ECOSOC"
	CommitteeAIPPM                Committee = "AIPPM"
	CommitteeIPPhotographer       Committee = "IP_PHOTOGRAPHER"
	CommitteeIPJournalist         Committee = "IP_JOURNALIST"
	CommitteeUNSCOvernightCrisis  Committee = "UNSC_OVERNIGHT_CRISIS"
	CommitteeAIPPMOvernightCrisis Committee = "AIPPM_OVERNIGHT_CRISIS"
	CommitteeMootCourt            Committee = "MOOT_COURT"
)

var AllCommittees = []Committee{
	CommitteeUNHRC,
	CommitteeUNGADISEC,
	CommitteeECOSOC,
	CommitteeAIPPM,
	CommitteeIPPhotographer,
	CommitteeIPJournalist,
	CommitteeUNSCOvernightCrisis,
	CommitteeAIPPMOvernightCrisis,
	CommitteeMootCourt,
}

func (c Committee) IsValid() bool {
	for _, committee := range AllCommittees {
		if c == committee {
			return true
		}
	}
	return false
}

// IsTeamCommittee reports whether registration for this committee is
// by three-person team rather than individual.
func (c Committee) IsTeamCommittee() bool {
	return c == CommitteeMootCourt
}

// IsSchoolRestricted reports whether school students are barred from
// this committee (Moot Court and both overnight crisis committees).
func (c Committee) IsSchoolRestricted() bool {
	return c == CommitteeMootCourt ||
		c == CommitteeUNSCOvernightCrisis ||
		c == CommitteeAIPPMOvernightCrisis
}

type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A_POSITIVE"
	BloodGroupANegative  BloodGroup = "A_NEGATIVE"
	BloodGroupBPositive  BloodGroup = "B_POSITIVE"
	BloodGroupBNegative  BloodGroup = "B_NEGATIVE"
	BloodGroupABPositive BloodGroup = "AB_POSITIVE"
	BloodGroupABNegative BloodGroup = "AB_NEGATIVE"
	BloodGroupOPositive  BloodGroup = "O_POSITIVE"
	BloodGroupONegative  BloodGroup = "O_NEGATIVE"
)

func (b BloodGroup) IsValid() bool {
	switch b {
	case BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupABPositive, BloodGroupABNegative,
		BloodGroupOPositive, BloodGroupONegative:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionTypeNitrutsav TransactionType = "NITRUTSAV"
	TransactionTypeMun       TransactionType = "MUN"
)

type PaymentMethod string

const (
	PaymentMethodQR       PaymentMethod = "qr"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

func (p PaymentMethod) IsValid() bool {
	return p == PaymentMethodQR || p == PaymentMethodRazorpay
}
