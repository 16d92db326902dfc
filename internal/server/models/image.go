package models

// Image is an opaque encoded payload attached to one pass. The service
// stores Data verbatim; format and encoding are the caller's concern.
type Image struct {
	ID     int64
	PassID int64
	Data   string
	Title  *string
}
