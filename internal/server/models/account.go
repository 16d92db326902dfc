package models

// Account identifies a pass submitter, keyed by email. Profile fields are
// written once on first submission and never updated afterwards.
type Account struct {
	ID         int64
	Email      string
	FamilyName string
	GivenName  string
	Patronymic *string
	Phone      *string
}
