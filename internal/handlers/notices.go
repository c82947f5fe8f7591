package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"classboard/internal/models"
	"classboard/internal/response"
	"classboard/internal/storage"
	"classboard/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoticeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	ImageURL string `json:"imageUrl"`
}

// GetNotices lists all notices, newest first
// @Summary		List notices
// @Tags			notices
// @Produce		json
// @Success		200	{array}		models.Notice
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/notices [get]
func GetNotices(c *gin.Context) {
	var notices []models.Notice
	if err := storage.DB.Preload("CreatedBy").Order("created_at desc").Find(&notices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Server error",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, notices)
}

// CreateNotice creates a notice authored by the logged-in admin
// @Summary		Create notice
// @Tags			notices
// @Accept			json
// @Produce		json
// @Param			notice	body		NoticeRequest	true	"Notice fields"
// @Security		BearerAuth
// @Success		201		{object}	models.Notice
// @Failure		400		{object}	response.ErrorResponse	"Validation failed (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/notices [post]
func CreateNotice(c *gin.Context) {
	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Please provide title and content.",
		})
		return
	}

	notice := models.Notice{
		Title:       req.Title,
		Content:     req.Content,
		Date:        time.Now(),
		Type:        "announcement",
		ImageURL:    req.ImageURL,
		CreatedByID: c.GetUint("userID"),
	}
	if req.Type == "leave" || req.Type == "announcement" {
		notice.Type = req.Type
	}
	if req.Date != "" {
		if d, err := time.Parse(time.RFC3339, req.Date); err == nil {
			notice.Date = d
		}
	}

	if err := storage.DB.Create(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Server error",
			Details: err.Error(),
		})
		return
	}
	storage.DB.Preload("CreatedBy").First(&notice, notice.ID)

	ws.HubInstance.BroadcastEvent("notice_created", map[string]interface{}{
		"notice_id": notice.ID,
		"title":     notice.Title,
	})

	c.JSON(http.StatusCreated, notice)
}

// UpdateNotice updates the supplied fields of a notice
// @Summary		Update notice
// @Description	Partial update: empty fields keep their stored value
// @Tags			notices
// @Accept			json
// @Produce		json
// @Param			id		path		int				true	"Notice ID"
// @Param			notice	body		NoticeRequest	true	"Notice fields"
// @Security		BearerAuth
// @Success		200		{object}	models.Notice
// @Failure		400		{object}	response.ErrorResponse	"Invalid id (INVALID_NOTICE_ID) or body (VALIDATION_ERROR)"
// @Failure		404		{object}	response.ErrorResponse	"Notice not found (NOTICE_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/notices/{id} [put]
func UpdateNotice(c *gin.Context) {
	id, ok := noticeID(c)
	if !ok {
		return
	}

	var req NoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: err.Error(),
		})
		return
	}

	var notice models.Notice
	if err := storage.DB.First(&notice, id).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOTICE_NOT_FOUND",
			Message: "Notice not found",
		})
		return
	}

	if req.Title != "" {
		notice.Title = req.Title
	}
	if req.Content != "" {
		notice.Content = req.Content
	}
	if req.Type == "leave" || req.Type == "announcement" {
		notice.Type = req.Type
	}
	if req.ImageURL != "" {
		notice.ImageURL = req.ImageURL
	}
	if req.Date != "" {
		if d, err := time.Parse(time.RFC3339, req.Date); err == nil {
			notice.Date = d
		}
	}

	if err := storage.DB.Save(&notice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Server error",
			Details: err.Error(),
		})
		return
	}
	storage.DB.Preload("CreatedBy").First(&notice, notice.ID)

	ws.HubInstance.BroadcastEvent("notice_updated", map[string]interface{}{
		"notice_id": notice.ID,
		"title":     notice.Title,
	})

	c.JSON(http.StatusOK, notice)
}

// DeleteNotice removes a notice
// @Summary		Delete notice
// @Tags			notices
// @Produce		json
// @Param			id	path		int	true	"Notice ID"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Notice deleted"
// @Failure		400	{object}	response.ErrorResponse		"Invalid id (INVALID_NOTICE_ID)"
// @Failure		404	{object}	response.ErrorResponse		"Notice not found (NOTICE_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse		"Server error (DB_ERROR)"
// @Router			/api/notices/{id} [delete]
func DeleteNotice(c *gin.Context) {
	id, ok := noticeID(c)
	if !ok {
		return
	}

	res := storage.DB.Delete(&models.Notice{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Server error",
			Details: res.Error.Error(),
		})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "NOTICE_NOT_FOUND",
			Message: "Notice not found",
		})
		return
	}

	ws.HubInstance.BroadcastEvent("notice_deleted", map[string]interface{}{
		"notice_id": id,
	})

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Notice deleted successfully"})
}

// UploadNoticeImage stores a notice image and returns its public URL
// @Summary		Upload notice image
// @Tags			notices
// @Accept			multipart/form-data
// @Produce		json
// @Param			image	formData	file	true	"Image file"
// @Security		BearerAuth
// @Success		201		{object}	map[string]string		"Uploaded image URL"
// @Failure		400		{object}	response.ErrorResponse	"Missing or invalid file (VALIDATION_ERROR)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (UPLOAD_ERROR)"
// @Router			/api/notices/upload [post]
func UploadNoticeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Please attach an image file.",
		})
		return
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "UPLOAD_ERROR",
			Message: "Failed to store image",
			Details: err.Error(),
		})
		return
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "UPLOAD_ERROR",
			Message: "Failed to store image",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": "/uploads/" + name})
}

func noticeID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_NOTICE_ID",
			Message: "Invalid notice id",
		})
		return 0, false
	}
	return uint(id), true
}
