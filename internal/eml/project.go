package eml

import (
	"io"

	"github.com/hydai/eml2md/internal/contenttype"
	"github.com/hydai/eml2md/internal/parser"
)

// ParseFile reads and decodes an .eml file into an Email. Read and decode
// failures are terminal; missing or malformed individual headers degrade to
// empty fields instead.
func ParseFile(filePath string) (*Email, error) {
	msg, err := parser.ParseFile(filePath)
	if err != nil {
		return nil, err
	}
	return Project(msg), nil
}

// Parse decodes an email from a reader into an Email
func Parse(r io.Reader) (*Email, error) {
	msg, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return Project(msg), nil
}

// Project builds the domain model from a decoded message
func Project(msg *parser.Message) *Email {
	header := Header{
		From:    firstUser(msg.From),
		To:      toUsers(msg.To),
		CC:      toUsers(msg.CC),
		Subject: msg.Subject,
	}

	if !msg.Date.IsZero() {
		utc := msg.Date.UTC()
		header.Date = &utc
	}

	var body []Body
	if msg.BodyText != "" {
		body = append(body, Body{Content: msg.BodyText, ContentType: "text/plain"})
	}
	if msg.BodyHTML != "" {
		body = append(body, Body{Content: msg.BodyHTML, ContentType: "text/html"})
	}

	var attachments []Attachment
	for _, part := range msg.Attachments {
		att := Attachment{
			Raw: append([]byte(nil), part.Data...),
		}
		if part.ContentType != "" {
			ct := contenttype.Parse(part.ContentType)
			att.ContentType = &ct
		}
		attachments = append(attachments, att)
	}

	return &Email{
		Header:      header,
		Body:        body,
		Attachments: attachments,
	}
}

func firstUser(addrs []parser.Address) User {
	if len(addrs) == 0 {
		return User{}
	}
	return User{Name: addrs[0].Name, Email: addrs[0].Email}
}

func toUsers(addrs []parser.Address) []User {
	users := make([]User, 0, len(addrs))
	for _, addr := range addrs {
		users = append(users, User{Name: addr.Name, Email: addr.Email})
	}
	return users
}
