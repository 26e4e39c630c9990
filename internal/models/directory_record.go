package models

// DirectoryRecord is one row of the NPI directory, created in bulk from a
// CSV import. The NPI stays a string to preserve leading zeros. Duplicate
// imports are appended as-is; no uniqueness is enforced at this layer.
type DirectoryRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Npi         string `json:"npi"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	PhoneNumber string `json:"phone_number"`
}
