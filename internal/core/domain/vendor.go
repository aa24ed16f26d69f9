package domain

// Vendor represents an external payee referenced by vouchers.
type Vendor struct {
	VendorID      string `json:"vendorID"` // Primary Key (e.g., UUID)
	Name          string `json:"name"`
	TaxID         string `json:"taxID"` // Business registration number, not required unique
	Phone         string `json:"phone,omitempty"`
	BankAccount   string `json:"bankAccount,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	AuditFields
}
