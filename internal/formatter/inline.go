package formatter

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hydai/eml2md/internal/eml"
)

// InlineAttachments replaces "[image: <name>]" placeholders in content with
// embedded Markdown images, one per image attachment carrying a "name"
// parameter. Matching is exact-substring; attachments without a name or with
// a non-image type are left alone. Attachments are applied in sequence
// order.
func InlineAttachments(content string, attachments []eml.Attachment) string {
	for _, att := range attachments {
		ct := att.ContentType
		if ct == nil || ct.MainType != "image" {
			continue
		}
		name, ok := ct.Parameters["name"]
		if !ok {
			continue
		}

		placeholder := fmt.Sprintf("[image: %s]", name)
		dataURI := fmt.Sprintf("![%s](data:%s;base64,%s)",
			name, ct.MimeType(), base64.StdEncoding.EncodeToString(att.Raw))
		content = strings.ReplaceAll(content, placeholder, dataURI)
	}
	return content
}
