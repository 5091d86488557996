package services

import (
	"errors"
	"slices"
	"strings"

	"portfolio/internal/domain"
)

var ErrUnknownRoom = errors.New("unknown chat room")

type ChatState struct {
	ActiveRoom string `json:"active_room"`
	Draft      string `json:"draft"`
}

// SelectRoom switches the active room. Ids outside the room list leave the
// selection unchanged.
func SelectRoom(st ChatState, rooms []domain.ChatRoom, id string) (ChatState, error) {
	if !slices.ContainsFunc(rooms, func(r domain.ChatRoom) bool { return r.ID == id }) {
		return st, ErrUnknownRoom
	}
	st.ActiveRoom = id
	return st, nil
}

// SendMessage is the composer's send button. A blank draft is kept as typed
// and nothing is sent; otherwise the draft is cleared and returned for
// logging. The displayed history is a fixed sample and is never appended to.
func SendMessage(st ChatState, draft string) (ChatState, string, bool) {
	if strings.TrimSpace(draft) == "" {
		st.Draft = draft
		return st, "", false
	}
	st.Draft = ""
	return st, draft, true
}
