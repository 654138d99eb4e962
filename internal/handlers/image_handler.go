package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vuteanh/bookmarks/backend/internal/models"
	"github.com/vuteanh/bookmarks/backend/internal/repositories"
	"github.com/vuteanh/bookmarks/backend/internal/services"
)

// ImageHandler handles image bookmarking, likes, views and ranking requests
type ImageHandler struct {
	imageRepository repositories.ImageRepository
	likeRepository  repositories.LikeRepository
	likeService     *services.LikeService
	rankingService  *services.RankingService
	activityService *services.ActivityService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(
	imageRepo repositories.ImageRepository,
	likeRepo repositories.LikeRepository,
	likeService *services.LikeService,
	rankingService *services.RankingService,
	activityService *services.ActivityService,
) *ImageHandler {
	return &ImageHandler{
		imageRepository: imageRepo,
		likeRepository:  likeRepo,
		likeService:     likeService,
		rankingService:  rankingService,
		activityService: activityService,
	}
}

// RegisterImageRoutes registers image-related routes
func (h *ImageHandler) RegisterImageRoutes(g *echo.Group) {
	g.POST("/images", h.BookmarkImage)
	g.GET("/images", h.ListImages)
	g.GET("/images/ranking", h.ImageRanking)
	g.GET("/images/:id", h.GetImage)
	g.POST("/images/:id/like", h.LikeImage)
	g.DELETE("/images/:id/like", h.UnlikeImage)
}

// BookmarkImage creates an image bookmark and records it in the activity
// stream. The response includes the recorded action (nil when the same
// bookmark was logged within the dedup window).
func (h *ImageHandler) BookmarkImage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image := &models.Image{
		UserID:      currentUserID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := h.imageRepository.CreateImage(image); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	action, err := h.activityService.Record(currentUserID, models.VerbBookmarkedImage, &models.ActionTarget{
		Type: models.TargetImage,
		ID:   image.ID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"image": image, "action": action})
}

// ListImages returns bookmarked images, newest first
func (h *ImageHandler) ListImages(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 8
	}

	images, err := h.imageRepository.GetImages((page-1)*limit, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"images": images, "page": page})
}

// GetImage returns an image detail and counts the view
func (h *ImageHandler) GetImage(c echo.Context) error {
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image ID")
	}

	image, err := h.imageRepository.GetImageByID(uint(imageID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalViews, err := h.rankingService.RecordView(c.Request().Context(), image.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked := false
	if currentUserID := getUserIDFromContext(c); currentUserID != 0 {
		liked, _ = h.likeRepository.HasUserLikedImage(currentUserID, image.ID)
	}

	return c.JSON(http.StatusOK, echo.Map{"image": image, "total_views": totalViews, "liked": liked})
}

// LikeImage likes an image
func (h *ImageHandler) LikeImage(c echo.Context) error {
	return h.setLike(c, true)
}

// UnlikeImage removes a like from an image
func (h *ImageHandler) UnlikeImage(c echo.Context) error {
	return h.setLike(c, false)
}

func (h *ImageHandler) setLike(c echo.Context, like bool) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image ID")
	}

	if err := h.likeService.SetLike(currentUserID, uint(imageID), like); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Image not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": like}})
}

// ImageRanking returns the most viewed images, ordered by the counter store
func (h *ImageHandler) ImageRanking(c echo.Context) error {
	k, _ := strconv.Atoi(c.QueryParam("k"))
	if k < 1 || k > 50 {
		k = 10
	}

	images, err := h.rankingService.MostViewed(c.Request().Context(), int64(k))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"most_viewed": images})
}
