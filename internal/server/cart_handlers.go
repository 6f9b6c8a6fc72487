package server

import (
	"mosaic/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddToCart handles POST /api/cart/add
func (s *Server) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("productId is required"))
	}

	cart, err := s.cartService.AddItem(c.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(cart)
}

// GetCart handles GET /api/cart
func (s *Server) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	cart, err := s.cartService.GetCart(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(cart)
}

// UpdateCartItem handles PUT /api/cart/update
func (s *Server) UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("productId is required"))
	}

	cart, err := s.cartService.UpdateItem(c.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(cart)
}

// RemoveFromCart handles DELETE /api/cart/remove/:productId
func (s *Server) RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	productID, err := s.parseID(c, "productId")
	if err != nil {
		return nil
	}

	cart, removeErr := s.cartService.RemoveItem(c.Context(), userID, productID)
	if removeErr != nil {
		return respondError(c, removeErr)
	}

	return c.JSON(cart)
}
