package server

import (
	"mosaic/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateProduct handles POST /api/products
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		CategoryID  uint    `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" || req.CategoryID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and category_id are required"))
	}
	if req.Price < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Price must not be negative"))
	}

	// The category must exist before a product can reference it.
	if _, err := s.categoryRepo.GetByID(c.Context(), req.CategoryID); err != nil {
		return respondError(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if err := s.productRepo.Create(c.Context(), product); err != nil {
		return respondError(c, err)
	}

	product, err := s.productRepo.GetByID(c.Context(), product.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProducts handles GET /api/products
func (s *Server) GetProducts(c *fiber.Ctx) error {
	products, err := s.productRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// GetProduct handles GET /api/products/:id
func (s *Server) GetProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	product, getErr := s.productRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	return c.JSON(product)
}

// UpdateProduct handles PUT /api/products/:id
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		CategoryID  uint     `json:"category_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, getErr := s.productRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Price must not be negative"))
		}
		product.Price = *req.Price
	}
	if req.CategoryID != 0 {
		if _, catErr := s.categoryRepo.GetByID(c.Context(), req.CategoryID); catErr != nil {
			return respondError(c, catErr)
		}
		product.CategoryID = req.CategoryID
		product.Category = nil
	}

	if updateErr := s.productRepo.Update(c.Context(), product); updateErr != nil {
		return respondError(c, updateErr)
	}

	product, getErr = s.productRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/products/:id
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.productRepo.GetByID(c.Context(), id); getErr != nil {
		return respondError(c, getErr)
	}

	if deleteErr := s.productRepo.Delete(c.Context(), id); deleteErr != nil {
		return respondError(c, deleteErr)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}
