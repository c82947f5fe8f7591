package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"classboard/internal/models"
	"classboard/internal/response"
	"classboard/internal/schedule"
	"classboard/internal/storage"
	"classboard/internal/ws"

	"github.com/gin-gonic/gin"
)

var classCtx = context.Background()

// ClassRequest is the create/update body. Times are RFC3339 instants.
// Older clients send the category in `type`; both are accepted.
type ClassRequest struct {
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Day         string `json:"day"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Medium      string `json:"medium"`
	Teacher     string `json:"teacher"`
	ClassNumber *int   `json:"classNumber"`
}

func classService() *schedule.Service {
	return schedule.NewService(storage.DB)
}

// parseClassRequest binds the body and parses the time fields, answering the
// request itself on failure.
func parseClassRequest(c *gin.Context) (schedule.ClassInput, bool) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: err.Error(),
		})
		return schedule.ClassInput{}, false
	}

	if req.Title == "" || req.StartTime == "" || req.EndTime == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Please provide title, startTime, endTime, and location.",
		})
		return schedule.ClassInput{}, false
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: "startTime must be an RFC3339 timestamp",
		})
		return schedule.ClassInput{}, false
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: "endTime must be an RFC3339 timestamp",
		})
		return schedule.ClassInput{}, false
	}

	return schedule.ClassInput{
		Title:       req.Title,
		StartTime:   start,
		EndTime:     end,
		Location:    req.Location,
		Day:         req.Day,
		Category:    req.Category,
		Type:        req.Type,
		Medium:      req.Medium,
		Teacher:     req.Teacher,
		ClassNumber: req.ClassNumber,
	}, true
}

// writeClassError maps service errors onto the API taxonomy.
func writeClassError(c *gin.Context, err error) {
	var vErr *schedule.ValidationError
	var oErr *schedule.OverlapError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
			Details: vErr.Error(),
		})
	case errors.As(err, &oErr):
		c.JSON(http.StatusBadRequest, response.OverlapResponse{
			Code:    "CLASS_OVERLAP",
			Message: fmt.Sprintf("Class time overlaps with an existing class: %q", oErr.Conflict.Title),
			Overlap: response.ConflictInfo{
				ID:        oErr.Conflict.ID,
				Title:     oErr.Conflict.Title,
				StartTime: oErr.Conflict.StartTime,
				EndTime:   oErr.Conflict.EndTime,
				Location:  oErr.Conflict.Location,
				Day:       oErr.Conflict.Day,
			},
		})
	case errors.Is(err, schedule.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "CLASS_NOT_FOUND",
			Message: "Class not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Server error",
			Details: err.Error(),
		})
	}
}

// GetClasses lists classes sorted by start time
// @Summary		List classes
// @Description	Returns all classes sorted by start time, optionally filtered by category and day. The unfiltered list is cached.
// @Tags			classes
// @Produce		json
// @Param			category	query		string	false	"Filter by category (PERSONAL or EXTERNAL)"
// @Param			day			query		string	false	"Filter by weekday name"
// @Success		200			{array}		models.ClassSession		"Classes sorted by start time"
// @Failure		500			{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/classes [get]
func GetClasses(c *gin.Context) {
	category := c.Query("category")
	day := c.Query("day")

	// Cache only the unfiltered list; filtered requests go to the database.
	cacheable := category == "" && day == ""
	if cacheable && storage.RedisClient != nil {
		cached, err := storage.RedisClient.Get(classCtx, storage.ClassListCacheKey).Result()
		if err == nil && cached != "" {
			var classes []models.ClassSession
			if err := json.Unmarshal([]byte(cached), &classes); err == nil {
				c.JSON(http.StatusOK, classes)
				return
			}
		}
	}

	classes, err := classService().List(schedule.ListFilter{Category: category, Day: day})
	if err != nil {
		writeClassError(c, err)
		return
	}

	if cacheable && storage.RedisClient != nil {
		if payload, err := json.Marshal(classes); err == nil {
			storage.RedisClient.Set(classCtx, storage.ClassListCacheKey, payload, 10*time.Minute)
		}
	}

	c.JSON(http.StatusOK, classes)
}

// GetClassByID returns one class
// @Summary		Get class
// @Tags			classes
// @Produce		json
// @Param			id	path		int	true	"Class ID"
// @Success		200	{object}	models.ClassSession
// @Failure		400	{object}	response.ErrorResponse	"Invalid id (INVALID_CLASS_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Class not found (CLASS_NOT_FOUND)"
// @Router			/api/classes/{id} [get]
func GetClassByID(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}

	cls, err := classService().Get(id)
	if err != nil {
		writeClassError(c, err)
		return
	}
	c.JSON(http.StatusOK, cls)
}

// CreateClass creates a class after the overlap check
// @Summary		Create class
// @Description	Creates a class; rejected when its time overlaps an existing class on the same day
// @Tags			classes
// @Accept			json
// @Produce		json
// @Param			class	body		ClassRequest	true	"Class fields"
// @Security		BearerAuth
// @Success		201		{object}	models.ClassSession		"Created class"
// @Failure		400		{object}	response.ErrorResponse	"Validation failed (VALIDATION_ERROR) or overlap (CLASS_OVERLAP)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/classes [post]
func CreateClass(c *gin.Context) {
	input, ok := parseClassRequest(c)
	if !ok {
		return
	}

	cls, err := classService().Create(input)
	if err != nil {
		writeClassError(c, err)
		return
	}

	storage.InvalidateClassCache()
	ws.HubInstance.BroadcastEvent("class_created", map[string]interface{}{
		"class_id": cls.ID,
		"title":    cls.Title,
		"day":      cls.Day,
	})

	c.JSON(http.StatusCreated, cls)
}

// UpdateClass replaces the schedulable fields of a class
// @Summary		Update class
// @Description	Replaces the class fields; the overlap check excludes the class itself
// @Tags			classes
// @Accept			json
// @Produce		json
// @Param			id		path		int				true	"Class ID"
// @Param			class	body		ClassRequest	true	"Class fields"
// @Security		BearerAuth
// @Success		200		{object}	models.ClassSession		"Updated class"
// @Failure		400		{object}	response.ErrorResponse	"Validation failed (VALIDATION_ERROR) or overlap (CLASS_OVERLAP)"
// @Failure		404		{object}	response.ErrorResponse	"Class not found (CLASS_NOT_FOUND)"
// @Failure		500		{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/classes/{id} [put]
func UpdateClass(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}
	input, ok := parseClassRequest(c)
	if !ok {
		return
	}

	cls, err := classService().Update(id, input)
	if err != nil {
		writeClassError(c, err)
		return
	}

	storage.InvalidateClassCache()
	ws.HubInstance.BroadcastEvent("class_updated", map[string]interface{}{
		"class_id": cls.ID,
		"title":    cls.Title,
		"day":      cls.Day,
	})

	c.JSON(http.StatusOK, cls)
}

// DeleteClass removes a class
// @Summary		Delete class
// @Tags			classes
// @Produce		json
// @Param			id	path		int	true	"Class ID"
// @Security		BearerAuth
// @Success		200	{object}	response.DeleteResponse	"Deleted class id"
// @Failure		400	{object}	response.ErrorResponse	"Invalid id (INVALID_CLASS_ID)"
// @Failure		404	{object}	response.ErrorResponse	"Class not found (CLASS_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Server error (DB_ERROR)"
// @Router			/api/classes/{id} [delete]
func DeleteClass(c *gin.Context) {
	id, ok := classID(c)
	if !ok {
		return
	}

	deletedID, err := classService().Delete(id)
	if err != nil {
		writeClassError(c, err)
		return
	}

	storage.InvalidateClassCache()
	ws.HubInstance.BroadcastEvent("class_deleted", map[string]interface{}{
		"class_id": deletedID,
	})

	c.JSON(http.StatusOK, response.DeleteResponse{Message: "Class deleted", ID: deletedID})
}

func classID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "INVALID_CLASS_ID",
			Message: "Invalid class id",
		})
		return 0, false
	}
	return uint(id), true
}
