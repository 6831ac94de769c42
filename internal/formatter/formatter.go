// Package formatter renders a projected email to Markdown. The header
// becomes a fixed two-column table and each supported body part is emitted
// with image attachments inlined as base64 data URIs.
package formatter

import "github.com/hydai/eml2md/internal/eml"

// Formatter renders an entire email to Markdown
type Formatter interface {
	Format(email *eml.Email) string
}

// CreateFormatter returns the formatter for the given name. "html" selects
// the HTML variant; any other name silently falls back to the simple one.
func CreateFormatter(name string) Formatter {
	if name == "html" {
		return &HTMLFormatter{}
	}
	return &SimpleFormatter{}
}

// FormatMarkdown formats an email to Markdown using the named formatter
func FormatMarkdown(email *eml.Email, formatterName string) string {
	return CreateFormatter(formatterName).Format(email)
}
