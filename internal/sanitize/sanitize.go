// Package sanitize cleans untrusted request strings before anything
// downstream trusts them. Stripping here is defense in depth; the real
// injection barrier is parameter binding at the repository.
package sanitize

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"advocates/internal/domain/apperr"
)

// Default length caps per field class.
const (
	MaxTextLen  = 100
	MaxCityLen  = 100
	MaxEmailLen = 254
	MaxURLLen   = 2048
)

var (
	ctrlBytes  = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	scriptTag  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	iframeTag  = regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)
	objectTag  = regexp.MustCompile(`(?is)<object[^>]*>.*?</object>`)
	embedTag   = regexp.MustCompile(`(?i)<embed[^>]*>`)
	jsScheme   = regexp.MustCompile(`(?i)javascript:`)
	dataScheme = regexp.MustCompile(`(?i)data:`)
	eventAttr  = regexp.MustCompile(`(?i)on\w+\s*=`)
	alertCall  = regexp.MustCompile(`(?i)alert\([^)]*\)`)
	anyTag     = regexp.MustCompile(`<[^>]*>`)
	specials   = regexp.MustCompile(`[<>"'&]`)

	sqlKeyword   = regexp.MustCompile(`(?i)\b(union|select|insert|update|delete|drop|create|alter|exec|execute|script|javascript|vbscript|onload|onerror|onclick)\b`)
	sqlTautology = regexp.MustCompile(`(?i)\b(and|or)\b\s+\d+\s*=\s*\d+`)

	cityChars = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
)

// Options controls String behavior per field class.
type Options struct {
	// MaxLength truncates the cleaned value; <=0 means no cap.
	MaxLength int
	// AllowHTML skips all structural stripping and only removes
	// dangerous bytes and enforces MaxLength. No field in this system
	// sets it; it exists for fields explicitly marked safe.
	AllowHTML bool
	// AllowSpecialChars keeps < > " ' & instead of blanking them.
	AllowSpecialChars bool
}

// String returns a best-effort cleaned copy of input. It never fails;
// if nothing safe remains the result is "".
func String(input string, opts Options) string {
	s := strings.ReplaceAll(input, "\x00", "")
	s = ctrlBytes.ReplaceAllString(s, "")

	if opts.AllowHTML {
		return truncate(s, opts.MaxLength)
	}

	s = strings.TrimSpace(s)
	s = normalizeSpace(s)

	if !opts.AllowSpecialChars {
		s = specials.ReplaceAllString(s, " ")
		s = normalizeSpace(s)
	}

	s = scriptTag.ReplaceAllString(s, "")
	s = iframeTag.ReplaceAllString(s, "")
	s = objectTag.ReplaceAllString(s, "")
	s = embedTag.ReplaceAllString(s, "")
	s = jsScheme.ReplaceAllString(s, "")
	s = eventAttr.ReplaceAllString(s, "")
	s = dataScheme.ReplaceAllString(s, "")
	s = alertCall.ReplaceAllString(s, "")
	s = anyTag.ReplaceAllString(s, "")

	s = strings.TrimSpace(truncate(s, opts.MaxLength))
	return s
}

// SearchTerm cleans free search text and additionally removes SQL keyword
// and boolean-tautology patterns. Removal, not escaping: the repository
// still binds every value. Never fails; unsafe-only input becomes "".
func SearchTerm(input string) string {
	if input == "" {
		return ""
	}
	s := String(input, Options{MaxLength: MaxTextLen})
	s = sqlKeyword.ReplaceAllString(s, "")
	s = specials.ReplaceAllString(s, "")
	s = sqlTautology.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return s
}

// City validates and cleans a city name. Unlike the generic cleaners it
// rejects instead of stripping: anything outside letters, spaces,
// hyphens, apostrophes and periods fails with InvalidParameter.
func City(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", apperr.NewInvalidParameter("city", "City is required")
	}
	if len(input) > MaxCityLen {
		return "", apperr.NewInvalidParameter("city", "City name is too long")
	}
	if !cityChars.MatchString(input) {
		return "", apperr.NewInvalidParameter("city", "City name contains invalid characters")
	}
	s := String(input, Options{MaxLength: MaxCityLen, AllowSpecialChars: true})
	return strings.TrimSpace(s), nil
}

// Email cleans and validates an email address, returning it lowercased.
func Email(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", apperr.NewInvalidParameter("email", "Email is required")
	}
	s := String(input, Options{MaxLength: MaxEmailLen})
	if _, err := mail.ParseAddress(s); err != nil || strings.ContainsAny(s, " <>") {
		return "", apperr.NewInvalidParameter("email", "Invalid email format")
	}
	return strings.ToLower(s), nil
}

// URL cleans and validates a URL against an allow-list of schemes
// (http and https unless overridden).
func URL(input string, schemes ...string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", apperr.NewInvalidParameter("url", "URL is required")
	}
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	s := String(input, Options{MaxLength: MaxURLLen, AllowSpecialChars: true})
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", apperr.NewInvalidParameter("url", "Invalid URL format")
	}
	for _, scheme := range schemes {
		if strings.EqualFold(u.Scheme, scheme) {
			return s, nil
		}
	}
	return "", apperr.NewInvalidParameter("url", "Invalid URL format")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
