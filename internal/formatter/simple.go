package formatter

import (
	"strings"

	"github.com/hydai/eml2md/internal/eml"
)

// SimpleFormatter renders the header table and every text/plain body part
type SimpleFormatter struct{}

// Format renders the full email: header table, blank line, body text
func (f *SimpleFormatter) Format(email *eml.Email) string {
	return f.formatHeader(&email.Header) + "\n\n" + f.formatBodies(email)
}

func (f *SimpleFormatter) formatHeader(header *eml.Header) string {
	var dateStr string
	if header.Date != nil {
		dateStr = header.Date.Format("2006-01-02 15:04:05")
	}

	rows := []string{
		"|||",
		"|---|---|",
		"|From|" + formatMailAddr(header.From) + "|",
		"|To|" + formatUsers(header.To) + "|",
		"|CC|" + formatUsers(header.CC) + "|",
		"|Date|" + dateStr + "|",
		"|Subject|" + header.Subject + "|",
	}
	return strings.Join(rows, "\n")
}

func (f *SimpleFormatter) formatBodies(email *eml.Email) string {
	var formatted []string
	for _, body := range email.Body {
		if !f.supportsContent(body) {
			continue
		}
		formatted = append(formatted, f.formatBody(body, email))
	}
	return strings.Join(formatted, "\n")
}

func (f *SimpleFormatter) formatBody(body eml.Body, email *eml.Email) string {
	content := InlineAttachments(body.Content, email.Attachments)
	return stripContent(content)
}

func (f *SimpleFormatter) supportsContent(body eml.Body) bool {
	return body.ContentType == "text/plain"
}

// formatMailAddr renders "Name <email>", or "<email>" when the display
// name is blank
func formatMailAddr(user eml.User) string {
	if user.Name == "" {
		return "<" + user.Email + ">"
	}
	return user.Name + " <" + user.Email + ">"
}

func formatUsers(users []eml.User) string {
	addrs := make([]string, 0, len(users))
	for _, user := range users {
		addrs = append(addrs, formatMailAddr(user))
	}
	return strings.Join(addrs, "<br>")
}

// stripContent collapses blank-line sequences and normalizes remaining
// CRLF line endings
func stripContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n\r\n", "\n")
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// HTMLFormatter is the seam for future HTML-aware rendering. It currently
// behaves exactly like SimpleFormatter, including accepting only
// text/plain body parts.
type HTMLFormatter struct {
	SimpleFormatter
}
