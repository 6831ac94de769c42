// Package contenttype parses MIME Content-Type header values into their
// main type, sub type, and parameters.
package contenttype

import "strings"

// ContentType represents a parsed Content-Type header value
type ContentType struct {
	// MainType is the primary type (e.g., "image", "text")
	MainType string
	// SubType is the secondary type (e.g., "png", "plain")
	SubType string
	// Parameters holds the ;-separated attributes (e.g., name="image.png")
	Parameters map[string]string
}

// Parse parses a Content-Type header value. It never fails: a missing "/"
// leaves SubType empty, and segments without "=" are dropped from Parameters.
//
// Example:
//
//	ct := contenttype.Parse(`image/png; name="test.png"`)
//	// ct.MainType == "image", ct.SubType == "png"
//	// ct.Parameters["name"] == "test.png"
func Parse(raw string) ContentType {
	ct := ContentType{
		Parameters: make(map[string]string),
	}

	tokens := strings.Split(raw, ";")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	typePart := tokens[0]
	if mainType, subType, found := strings.Cut(typePart, "/"); found {
		ct.MainType = mainType
		ct.SubType = subType
	} else {
		ct.MainType = typePart
	}

	for _, token := range tokens[1:] {
		key, val, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		// Strip one layer of surrounding quotes; escaped quotes are not handled
		val = strings.TrimSuffix(strings.TrimPrefix(val, `"`), `"`)
		ct.Parameters[strings.TrimSpace(key)] = val
	}

	return ct
}

// MimeType returns the full "main/sub" MIME type string (e.g., "image/png")
func (ct ContentType) MimeType() string {
	return ct.MainType + "/" + ct.SubType
}
