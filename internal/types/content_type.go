// internal/types/content_type.go
package types

import (
	"fmt"
	"strings"
)

// ContentType selects the separator policy and input alphabet of a field.
type ContentType int

const (
	ContentPlain      ContentType = iota // Plain number, optional decimal point, never segmented
	ContentBankCard                      // Groups of 4 digits
	ContentNationalID                    // 6-digit area code, then groups of 4
	ContentPhone                         // 3-4-4-4
)

var contentTypeNames = map[ContentType]string{
	ContentPlain:      "plain",
	ContentBankCard:   "bank_card",
	ContentNationalID: "national_id",
	ContentPhone:      "phone",
}

// String returns the config-file name of the content type.
func (t ContentType) String() string {
	if name, ok := contentTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ContentType(%d)", int(t))
}

// ParseContentType accepts the names produced by String, case-insensitively.
// Dashes and underscores are interchangeable ("bank-card" == "bank_card").
func ParseContentType(s string) (ContentType, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch key {
	case "", "plain", "number":
		return ContentPlain, nil
	case "bank_card", "bankcard", "card":
		return ContentBankCard, nil
	case "national_id", "nationalid", "id_card", "id":
		return ContentNationalID, nil
	case "phone", "mobile":
		return ContentPhone, nil
	}
	return ContentPlain, fmt.Errorf("unknown content type %q", s)
}

// UnmarshalText lets ContentType be decoded directly from TOML strings.
func (t *ContentType) UnmarshalText(text []byte) error {
	parsed, err := ParseContentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (t ContentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Accepts reports whether r belongs to the input alphabet of t.
// Separators are never part of the alphabet; they are managed by the field.
func (t ContentType) Accepts(r rune) bool {
	isDigit := r >= '0' && r <= '9'
	switch t {
	case ContentPlain:
		return isDigit || r == '.'
	case ContentNationalID:
		return isDigit || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	default:
		return isDigit
	}
}
