// Package parser decodes raw RFC 5322 / MIME email bytes into a flat
// Message structure: address lists, subject, date, the first plain-text
// and HTML body parts, and decoded attachments. It is the low-level
// boundary the rest of the pipeline builds on.
package parser

import (
	"fmt"
	"io"
	"mime"
	"os"
	"strings"

	"github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
	"golang.org/x/text/encoding/charmap"
)

func init() {
	// Register additional charsets that are commonly used in emails
	charset.RegisterEncoding("windows-1252", charmap.Windows1252)
	charset.RegisterEncoding("iso-8859-1", charmap.ISO8859_1)
	charset.RegisterEncoding("iso-8859-15", charmap.ISO8859_15)
}

// ParseFile decodes an .eml file into a Message
func ParseFile(filePath string) (*Message, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes an email from a reader
func Parse(r io.Reader) (*Message, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email message: %w", err)
	}

	msg := &Message{}
	header := mr.Header

	// Subject - decode MIME words
	msg.Subject = decodeMIMEWord(header.Get("Subject"))

	msg.From = parseAddressList(header, "From")
	msg.To = parseAddressList(header, "To")
	msg.CC = parseAddressList(header, "Cc")

	// Date - a missing or malformed header leaves the zero time
	if date, err := header.Date(); err == nil {
		msg.Date = date
	}

	// Walk body parts and attachments
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse email message: %w", err)
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to parse email message: %w", err)
			}

			// Keep only the first part of each kind
			if strings.HasPrefix(contentType, "text/plain") {
				if msg.BodyText == "" {
					msg.BodyText = string(body)
				}
			} else if strings.HasPrefix(contentType, "text/html") {
				if msg.BodyHTML == "" {
					msg.BodyHTML = string(body)
				}
			}

		case *mail.AttachmentHeader:
			data, err := io.ReadAll(part.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to parse email message: %w", err)
			}

			msg.Attachments = append(msg.Attachments, AttachmentPart{
				ContentType: h.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return msg, nil
}

// parseAddressList reads an address header into Address values. A missing
// or malformed header yields nil, never an error.
func parseAddressList(header mail.Header, key string) []Address {
	addrs, err := header.AddressList(key)
	if err != nil {
		return nil
	}

	var result []Address
	for _, addr := range addrs {
		result = append(result, Address{
			Name:  addr.Name,
			Email: addr.Address,
		})
	}
	return result
}

// decodeMIMEWord decodes MIME-encoded words (RFC 2047)
// Example: =?UTF-8?Q?Invitaci=C3=B3n?= -> Invitación
func decodeMIMEWord(s string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(s)
	if err != nil {
		// If decoding fails, return original string
		return s
	}
	return decoded
}
