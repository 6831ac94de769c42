// Package eml defines the domain model for a decoded email and builds it
// from the low-level parser output.
package eml

import (
	"time"

	"github.com/hydai/eml2md/internal/contenttype"
)

// User represents an email address with an optional display name
type User struct {
	Name  string
	Email string
}

// Header holds the summary headers of an email
type Header struct {
	From    User
	To      []User
	CC      []User
	Subject string
	Date    *time.Time // fixed at UTC, nil when the message carries no date
}

// Body is a single decoded body part
type Body struct {
	Content string
	// ContentType is "text/plain" or "text/html", not a general MIME type
	ContentType string
}

// Attachment is a decoded attachment payload
type Attachment struct {
	Raw         []byte
	ContentType *contenttype.ContentType
	// ContentID is reserved for Content-ID based linking; it is never
	// populated today
	ContentID *string
}

// Email is a fully projected message: header, ordered body parts
// (plain text before HTML) and a flat attachment list
type Email struct {
	Header      Header
	Body        []Body
	Attachments []Attachment
}
