// Package models defines server-side data models persisted in the database.
package models

import "time"

// Status is the review state of a submitted pass. A record is editable only
// while it stays at StatusNew; the other states are assigned by an external
// review process.
type Status string

const (
	StatusNew      Status = "new"
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Pass is one submitted mountain-pass description.
//
// Latitude and longitude are kept as the exact strings the submitter sent;
// the service never reinterprets them numerically. Optional columns map to
// nil pointers.
type Pass struct {
	ID          int64
	BeautyTitle *string
	Title       string
	OtherTitles *string
	Connect     *string
	AddTime     time.Time
	Status      Status
	AccountID   int64

	Latitude  string
	Longitude string
	Height    *string

	LevelWinter *string
	LevelSummer *string
	LevelAutumn *string
	LevelSpring *string

	// Account and Images are populated on reads; Account is the submission
	// profile used during Submit.
	Account *Account
	Images  []*Image
}
