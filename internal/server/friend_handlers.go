package server

import (
	"mosaic/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/request
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ToUserID uint `json:"toUserId"`
	}
	if err := c.BodyParser(&req); err != nil || req.ToUserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("toUserId is required"))
	}

	request, err := s.friendService.Send(c.Context(), userID, req.ToUserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetFriendRequests handles GET /api/friends/requests
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requests, err := s.friendService.ListIncoming(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/request/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, acceptErr := s.friendService.Accept(c.Context(), requestID, userID)
	if acceptErr != nil {
		return respondError(c, acceptErr)
	}

	return c.JSON(fiber.Map{
		"message":       "Friend request accepted",
		"friendRequest": request,
	})
}

// DeclineFriendRequest handles POST /api/friends/request/:requestId/decline
func (s *Server) DeclineFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	request, declineErr := s.friendService.Decline(c.Context(), requestID, userID)
	if declineErr != nil {
		return respondError(c, declineErr)
	}

	return c.JSON(fiber.Map{
		"message":       "Friend request declined",
		"friendRequest": request,
	})
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.friendService.Friends(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(friends)
}
