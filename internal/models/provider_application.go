package models

// ProviderApplication is a provider's intake record. Email, phone number,
// license number, and NPI are each unique across all applications; the
// database indexes are the authoritative guard, the service-level checks
// only produce friendlier errors.
type ProviderApplication struct {
	BaseModel
	FullName        string `gorm:"not null" json:"fullName"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber     string `gorm:"uniqueIndex;size:15" json:"phoneNumber"`
	Speciality      string `json:"speciality"`
	LicenseNumber   string `gorm:"uniqueIndex" json:"licenseNumber"`
	NpiID           string `gorm:"uniqueIndex" json:"npiId"`
	PracticeAddress string `json:"practiceAddress"`

	// AI extraction output from the credential document, kept verbatim.
	AiRawResult    string `gorm:"type:text" json:"aiRawResult"`
	AiParsedResult string `gorm:"type:text" json:"aiParsedResult"`

	// Storage path of the uploaded credential file; never the bytes.
	CredentialFilePath string `gorm:"type:text" json:"credentialFilePath"`
}
