package parser

import "time"

// Message represents a decoded email with all its components
type Message struct {
	From        []Address
	To          []Address
	CC          []Address
	Subject     string
	Date        time.Time // zero when the header is missing or unparseable
	BodyText    string    // first text/plain part, "" if none
	BodyHTML    string    // first text/html part, "" if none
	Attachments []AttachmentPart
}

// Address represents a single sender or recipient
type Address struct {
	Name  string // display name, "" if none
	Email string
}

// AttachmentPart represents a decoded attachment
type AttachmentPart struct {
	ContentType string // raw Content-Type header value, "" if absent
	Data        []byte
}
