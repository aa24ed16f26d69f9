package models

// Vendor represents a row of the vendors table.
type Vendor struct {
	VendorID      string `db:"vendor_id"`
	Name          string `db:"name"`
	TaxID         string `db:"tax_id"` // Business registration number; not unique by contract
	Phone         string `db:"phone"`
	BankAccount   string `db:"bank_account"`
	ContactPerson string `db:"contact_person"`
	AuditFields
}
