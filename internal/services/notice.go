package services

import (
	"errors"
	"fmt"
)

// NoticeKind says how a notice is shown: a warning is a dismissable toast, a
// blocking notice is a modal alert.
type NoticeKind string

const (
	NoticeWarning  NoticeKind = "warning"
	NoticeBlocking NoticeKind = "blocking"
)

// Notice is a user-facing message produced by a rejected action.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// NoticeFor maps a service error to the notice shown to the visitor. ok is
// false for errors that are not user-facing.
func NoticeFor(err error, input string) (Notice, bool) {
	switch {
	case errors.Is(err, ErrMissingFields):
		return Notice{Kind: NoticeWarning, Title: "Missing information", Message: "Please fill in all fields"}, true
	case errors.Is(err, ErrCityNotFound):
		return Notice{
			Kind:    NoticeBlocking,
			Title:   "City not found",
			Message: fmt.Sprintf("City \"%s\" not found. Try searching for major cities like New York, London, Tokyo, Mumbai, Delhi, etc.", input),
		}, true
	}
	return Notice{}, false
}
