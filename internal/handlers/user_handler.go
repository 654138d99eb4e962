package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
)

// UserHandler handles user listing, detail and profile editing
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.GET("/users/:username", h.GetUser)
	g.GET("/users/:username/followers", h.GetFollowers)
	g.GET("/users/:username/following", h.GetFollowing)
	g.PUT("/profile", h.UpdateProfile)
}

// ListUsers returns all active users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.GetActiveUsers()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// GetUser returns an active user's detail with follower/following counts and
// whether the current user follows them
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followers, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	following, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isFollowing := false
	if currentUserID := getUserIDFromContext(c); currentUserID != 0 {
		isFollowing, _ = h.followRepository.IsFollowing(currentUserID, user.ID)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":            user,
		"followers_count": followers,
		"following_count": following,
		"is_following":    isFollowing,
	})
}

// GetFollowers lists the users following the given user
func (h *UserHandler) GetFollowers(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followers, err := h.followRepository.GetFollowers(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"users": followers})
}

// GetFollowing lists the users the given user follows
func (h *UserHandler) GetFollowing(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following, err := h.followRepository.GetFollowing(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"users": following})
}

// UpdateProfile edits the current user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.userRepository.GetProfileByUserID(currentUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.DateOfBirth != nil {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.PhotoURL != "" {
		profile.PhotoURL = req.PhotoURL
	}

	if err := h.userRepository.UpdateProfile(profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, profile)
}
