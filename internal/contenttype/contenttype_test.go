package contenttype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParse_Simple tests parsing a bare type/subtype value
func TestParse_Simple(t *testing.T) {
	ct := Parse("text/plain")

	assert.Equal(t, "text", ct.MainType)
	assert.Equal(t, "plain", ct.SubType)
	assert.Empty(t, ct.Parameters)
	assert.Equal(t, "text/plain", ct.MimeType())
}

// TestParse_WithParameters tests parameter extraction and quote stripping
func TestParse_WithParameters(t *testing.T) {
	ct := Parse(`image/png; name="test.png"; charset=utf-8`)

	assert.Equal(t, "image", ct.MainType)
	assert.Equal(t, "png", ct.SubType)
	assert.Equal(t, "test.png", ct.Parameters["name"])
	assert.Equal(t, "utf-8", ct.Parameters["charset"])
	assert.Len(t, ct.Parameters, 2)
}

// TestParse_MissingSlash tests that a value without "/" keeps an empty subtype
func TestParse_MissingSlash(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		main string
	}{
		{"bare word", "text", "text"},
		{"empty string", "", ""},
		{"word with parameters", "weird; charset=utf-8", "weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := Parse(tt.raw)
			assert.Equal(t, tt.main, ct.MainType)
			assert.Equal(t, "", ct.SubType)
			assert.Equal(t, tt.main+"/", ct.MimeType())
		})
	}
}

// TestParse_WhitespaceHandling tests trimming around segments and keys
func TestParse_WhitespaceHandling(t *testing.T) {
	ct := Parse("  text/html ;  charset =utf-8 ")

	assert.Equal(t, "text", ct.MainType)
	assert.Equal(t, "html", ct.SubType)
	assert.Equal(t, "utf-8", ct.Parameters["charset"])
}

// TestParse_SegmentWithoutEquals tests that parameter segments lacking "="
// are silently dropped
func TestParse_SegmentWithoutEquals(t *testing.T) {
	ct := Parse("multipart/mixed; boundary; charset=utf-8")

	assert.Equal(t, "multipart", ct.MainType)
	assert.Equal(t, "mixed", ct.SubType)
	assert.Len(t, ct.Parameters, 1)
	assert.Equal(t, "utf-8", ct.Parameters["charset"])
}

// TestParse_DuplicateKeyLastWins tests duplicate parameter keys
func TestParse_DuplicateKeyLastWins(t *testing.T) {
	ct := Parse("text/plain; charset=ascii; charset=utf-8")

	assert.Equal(t, "utf-8", ct.Parameters["charset"])
	assert.Len(t, ct.Parameters, 1)
}

// TestParse_ValueWithEquals tests that only the first "=" splits key from value
func TestParse_ValueWithEquals(t *testing.T) {
	ct := Parse("application/pkcs7-mime; smime-type=enveloped-data; micalg=sha=256")

	assert.Equal(t, "enveloped-data", ct.Parameters["smime-type"])
	assert.Equal(t, "sha=256", ct.Parameters["micalg"])
}

// TestParse_SubtypeWithExtraSlash tests that everything after the first "/"
// lands in the subtype
func TestParse_SubtypeWithExtraSlash(t *testing.T) {
	ct := Parse("a/b/c")

	assert.Equal(t, "a", ct.MainType)
	assert.Equal(t, "b/c", ct.SubType)
}
