package dto

// ApplyProviderRequest carries the multipart form fields of a provider
// application. The credential file part is handled separately.
type ApplyProviderRequest struct {
	FullName        string `form:"fullName" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	PhoneNumber     string `form:"phoneNumber" validate:"required,max=15"`
	Speciality      string `form:"speciality"`
	LicenseNumber   string `form:"licenseNumber" validate:"required"`
	NpiID           string `form:"npiId" validate:"required,npi"`
	PracticeAddress string `form:"practiceAddress"`
	AiRawResult     string `form:"aiRawResult"`
	AiParsedResult  string `form:"aiParsedResult"`
}
