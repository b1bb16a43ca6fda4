package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"storefront/internal/config"
	"storefront/internal/domain"
	catalogsvc "storefront/internal/service/catalog"
	checkoutsvc "storefront/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type storefrontHandlers struct {
	logger   *log.Logger
	catalog  *catalogsvc.Service
	checkout *checkoutsvc.Service
	cfg      config.Config
}

func (h *storefrontHandlers) index(c *gin.Context) {
	query := c.Query("q")
	products, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		h.serverError(c, "search products", err)
		return
	}
	h.render(c, http.StatusOK, "index.tmpl", gin.H{
		"Products": products,
		"Q":        query,
	})
}

func (h *storefrontHandlers) productDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "get product", err)
		return
	}
	h.render(c, http.StatusOK, "product.tmpl", gin.H{
		"Product": product,
	})
}

func (h *storefrontHandlers) viewCart(c *gin.Context) {
	cart := cartFromSession(c)
	summary, err := h.checkout.Reconcile(c.Request.Context(), cart)
	if err != nil {
		h.serverError(c, "reconcile cart", err)
		return
	}
	h.render(c, http.StatusOK, "cart.tmpl", gin.H{
		"Items":    summary.Lines,
		"Subtotal": summary.SubtotalCents,
	})
}

func (h *storefrontHandlers) addToCart(c *gin.Context) {
	productID := c.PostForm("product_id")
	if productID == "" {
		flashError(c, "Invalid product.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		flashError(c, "Invalid product.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			flashError(c, "Product not found.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.serverError(c, "get product", err)
		return
	}

	quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	cart := cartFromSession(c)
	cart.Add(productID, quantity)
	if err := saveCart(c, cart); err != nil {
		h.serverError(c, "save cart", err)
		return
	}
	flashSuccess(c, fmt.Sprintf("Added %d x %s to cart.", quantity, product.Name))

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

func (h *storefrontHandlers) removeFromCart(c *gin.Context) {
	cart := cartFromSession(c)
	cart.Remove(c.Param("id"))
	if err := saveCart(c, cart); err != nil {
		h.serverError(c, "save cart", err)
		return
	}
	flashSuccess(c, "Removed item from cart.")
	c.Redirect(http.StatusFound, "/cart")
}

func (h *storefrontHandlers) checkoutForm(c *gin.Context) {
	cart := cartFromSession(c)
	if cart.Empty() {
		flashError(c, "Your cart is empty.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	summary, err := h.checkout.Reconcile(c.Request.Context(), cart)
	if err != nil {
		h.serverError(c, "reconcile cart", err)
		return
	}
	h.render(c, http.StatusOK, "checkout.tmpl", gin.H{
		"Items":    summary.Lines,
		"Subtotal": summary.SubtotalCents,
	})
}

func (h *storefrontHandlers) checkoutSubmit(c *gin.Context) {
	cart := cartFromSession(c)
	input := checkoutsvc.CustomerInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Address: c.PostForm("address"),
		City:    c.PostForm("city"),
		State:   c.PostForm("state"),
		Postal:  c.PostForm("postal"),
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), cart, input)
	switch {
	case errors.Is(err, checkoutsvc.ErrEmptyCart):
		flashError(c, "Your cart is empty.")
		c.Redirect(http.StatusFound, "/")
		return
	case errors.Is(err, checkoutsvc.ErrMissingFields):
		summary, rerr := h.checkout.Reconcile(c.Request.Context(), cart)
		if rerr != nil {
			h.serverError(c, "reconcile cart", rerr)
			return
		}
		h.render(c, http.StatusOK, "checkout.tmpl", gin.H{
			"Items":    summary.Lines,
			"Subtotal": summary.SubtotalCents,
			"Errors":   []string{"Please fill out all fields."},
		})
		return
	case err != nil:
		h.serverError(c, "place order", err)
		return
	}

	if err := clearCart(c); err != nil {
		h.serverError(c, "clear cart", err)
		return
	}
	ordersPlacedTotal.Inc()
	flashSuccess(c, "Order placed! (Mock checkout)")
	c.Redirect(http.StatusFound, fmt.Sprintf("/success/%d", order.ID))
}

func (h *storefrontHandlers) orderSuccess(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	order, err := h.checkout.Order(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "get order", err)
		return
	}
	h.render(c, http.StatusOK, "success.tmpl", gin.H{
		"Order": order,
	})
}

func (h *storefrontHandlers) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
}

func (h *storefrontHandlers) serverError(c *gin.Context, action string, err error) {
	h.logger.Printf("storefront: %s: %v", action, err)
	c.String(http.StatusInternalServerError, "internal server error")
}
