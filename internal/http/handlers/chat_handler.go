package handlers

import (
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

type ChatHandler struct {
	Site  *content.Site
	Store repos.StateStore
}

func (h *ChatHandler) Page(c *fiber.Ctx) error {
	st := services.InitialChat(h.Site)
	scope, err := mintScope(c, h.Store, repos.PageChat, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *ChatHandler) Room(c *fiber.Ctx) error {
	var st services.ChatState
	scope, ok, err := formScope(c, h.Store, repos.PageChat, &st)
	if !ok {
		return err
	}
	room, _ := validate.Slug(c.FormValue("room"))
	next, err := services.SelectRoom(st, h.Site.ChatAPI.Rooms, room)
	if err != nil {
		log.Security(c, "validation.fail", map[string]any{"field": "room"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown room"})
	}
	if err := h.Store.Save(c.UserContext(), scope, repos.PageChat, next); err != nil {
		return err
	}
	return h.render(c, scope, next, nil)
}

// Send is the demo composer. Nothing is delivered and the history shown is
// the fixed sample; the draft is cleared and the attempt logged.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var st services.ChatState
	scope, ok, err := formScope(c, h.Store, repos.PageChat, &st)
	if !ok {
		return err
	}
	draft, valid := validate.Message(c.FormValue("message"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "message"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Messages are limited to 500 characters"})
	}
	next, sent, ok := services.SendMessage(st, draft)
	if ok {
		log.Info(c, "chat.send", map[string]any{"room": next.ActiveRoom, "chars": utf8.RuneCountInString(sent)})
	}
	if err := h.Store.Save(c.UserContext(), scope, repos.PageChat, next); err != nil {
		return err
	}
	return h.render(c, scope, next, nil)
}

func (h *ChatHandler) render(c *fiber.Ctx, scope string, st services.ChatState, extra fiber.Map) error {
	api := h.Site.ChatAPI
	return render(c, "chatapi", merge(fiber.Map{
		"Title":    "Real-time Chat API",
		"Scope":    scope,
		"API":      api,
		"Rooms":    api.Rooms,
		"Active":   services.ActiveRoom(st, api.Rooms, api.DefaultRoom),
		"Messages": api.Messages,
		"Draft":    st.Draft,
	}, extra))
}
