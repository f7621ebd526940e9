package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arash-p/TeamTrackBack/internal/models"
	"github.com/arash-p/TeamTrackBack/internal/repository"
	"github.com/arash-p/TeamTrackBack/pkg/utils"
)

const (
	defaultUserListLimit = 50
	maxUserListLimit     = 200
)

type UserHandler struct {
	userRepo *repository.UserRepository
}

func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	limit := defaultUserListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = clampLimit(parsed)
		}
	}

	users, err := h.userRepo.List(c.Context(), c.Query("q"), limit)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(users)
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(user)
}

type updateUserRequest struct {
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	Role            *string `json:"role"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Role != nil && !models.ValidRole(*req.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role"})
	}

	current, err := h.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "User not found")
	}

	input := repository.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	}

	if req.NewPassword != nil {
		// current_password is only verified when the caller supplies it.
		// Omitting it resets the password with no further check, which the
		// existing clients rely on.
		if req.CurrentPassword != nil &&
			!utils.CheckPassword(*req.CurrentPassword, current.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		if len(*req.NewPassword) < minPasswordLength {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Password must be at least 6 characters"})
		}
		hashed, err := utils.HashPassword(*req.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Failed to hash password"})
		}
		input.PasswordHash = &hashed
	}

	updated, err := h.userRepo.Update(c.Context(), userID, input)
	if err != nil {
		return storeError(c, err, "User not found")
	}
	return c.JSON(updated)
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxUserListLimit {
		return maxUserListLimit
	}
	return limit
}
