package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxQuery   = 50
	maxCity    = 60
	maxContent = 500
	maxField   = 80
)

var (
	reSlug = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
	rePath = regexp.MustCompile(`^[A-Za-z0-9/_:.\-?=&]{0,120}$`)
	rePost = regexp.MustCompile(`^[0-9A-Za-z]{1,26}$`)
)

// Scope accepts a page scope id minted by the server: the 36 character
// hyphenated form only, returned canonical (lower-case).
func Scope(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return "", false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

// Q checks a catalog search query. The query is not trimmed; spaces are
// part of the substring match.
func Q(s string) (string, bool) {
	if utf8.RuneCountInString(s) > maxQuery || strings.ContainsRune(s, 0) {
		return "", false
	}
	return s, true
}

// City checks a free-text city name before lookup. When ok is false the
// returned text is cut to the bound with NULs removed, fit for echoing back.
func City(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= maxCity && !strings.ContainsRune(s, 0) {
		return s, true
	}
	s = strings.ReplaceAll(s, "\x00", "")
	if r := []rune(s); len(r) > maxCity {
		s = string(r[:maxCity])
	}
	return s, false
}

// IntID parses a positive catalog id (product or course).
func IntID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Slug validates short lower-case identifiers such as room ids and platform keys.
func Slug(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, reSlug.MatchString(s)
}

// PostID validates a scheduled-post id (seed ids or ULIDs).
func PostID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePost.MatchString(s)
}

// Field bounds a short form field; emptiness is a business rule and is not
// rejected here.
func Field(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) <= maxField
}

// Content bounds the body of a scheduled post.
func Content(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, utf8.RuneCountInString(s) <= maxContent
}

// Endpoint validates the free-text path typed into the API tester.
func Endpoint(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, rePath.MatchString(s)
}

// Message bounds a chat draft.
func Message(s string) (string, bool) {
	return s, utf8.RuneCountInString(s) <= maxContent
}
