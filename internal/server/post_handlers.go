package server

import (
	"math"

	"mosaic/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultPostPageSize = 10

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return respondError(c, err)
	}

	post, err := s.postRepo.GetByID(c.Context(), post.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts with page/limit pagination, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultPostPageSize)
	if limit < 1 {
		limit = defaultPostPageSize
	}
	if limit > 100 {
		limit = 100
	}

	posts, err := s.postRepo.List(c.Context(), limit, (page-1)*limit)
	if err != nil {
		return respondError(c, err)
	}

	total, err := s.postRepo.Count(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return c.JSON(models.PostPage{
		Posts: posts,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			TotalPosts: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. Only the author may update.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, getErr := s.postRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	if post.AuthorID != userID {
		return respondError(c,
			models.NewForbiddenError("Not authorized to update this post"))
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}

	if updateErr := s.postRepo.Update(c.Context(), post); updateErr != nil {
		return respondError(c, updateErr)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Only the author may delete.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postRepo.GetByID(c.Context(), id)
	if getErr != nil {
		return respondError(c, getErr)
	}

	if post.AuthorID != userID {
		return respondError(c,
			models.NewForbiddenError("Not authorized to delete this post"))
	}

	if deleteErr := s.postRepo.Delete(c.Context(), id); deleteErr != nil {
		return respondError(c, deleteErr)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}
