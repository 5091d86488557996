package handlers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/content"
	"portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/services"
	"portfolio/internal/validate"
)

type EcommerceHandler struct {
	Site  *content.Site
	Store repos.StateStore
}

func (h *EcommerceHandler) Page(c *fiber.Ctx) error {
	st := services.InitialEcommerce()
	scope, err := mintScope(c, h.Store, repos.PageEcommerce, st)
	if err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *EcommerceHandler) Search(c *fiber.Ctx) error {
	var st services.EcommerceState
	scope, ok, err := formScope(c, h.Store, repos.PageEcommerce, &st)
	if !ok {
		return err
	}
	q, valid := validate.Q(c.FormValue("q"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "q"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Search terms are limited to 50 characters"})
	}
	st.Query = q
	if err := h.Store.Save(c.UserContext(), scope, repos.PageEcommerce, st); err != nil {
		return err
	}
	return h.render(c, scope, st, nil)
}

func (h *EcommerceHandler) Add(c *fiber.Ctx) error {
	return h.updateCart(c, "cart.add", services.AddToCart)
}

func (h *EcommerceHandler) Remove(c *fiber.Ctx) error {
	return h.updateCart(c, "cart.remove", services.RemoveFromCart)
}

func (h *EcommerceHandler) updateCart(c *fiber.Ctx, action string, apply func(services.Cart, int) services.Cart) error {
	var st services.EcommerceState
	scope, ok, err := formScope(c, h.Store, repos.PageEcommerce, &st)
	if !ok {
		return err
	}
	id, valid := validate.IntID(c.FormValue("product_id"))
	if !valid {
		log.Security(c, "validation.fail", map[string]any{"field": "product_id"})
		c.Status(fiber.StatusBadRequest)
		return h.render(c, scope, st, fiber.Map{"Err": "Unknown product"})
	}
	st.Cart = apply(st.Cart, id)
	if err := h.Store.Save(c.UserContext(), scope, repos.PageEcommerce, st); err != nil {
		return err
	}
	log.Audit(c, action, map[string]any{"product_id": id, "qty": st.Cart.Quantity(id)})
	return h.render(c, scope, st, nil)
}

func (h *EcommerceHandler) render(c *fiber.Ctx, scope string, st services.EcommerceState, extra fiber.Map) error {
	products := services.SearchProducts(h.Site.Products, st.Query)
	items := services.TotalItems(st.Cart)
	return render(c, "ecommerce", merge(fiber.Map{
		"Title":      "E-Commerce Store",
		"Scope":      scope,
		"Query":      st.Query,
		"Products":   products,
		"Cart":       st.Cart,
		"Lines":      services.CartLines(st.Cart, h.Site.Products),
		"TotalItems": items,
		"TotalPrice": services.TotalPrice(st.Cart, h.Site.Products),
	}, extra))
}
