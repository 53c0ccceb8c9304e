package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
)

// EventHandler 處理某一天行程列表的增刪改查
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler 創建一個新的 EventHandler 實例
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventInput 定義行程請求的結構
type EventInput struct {
	Subject   string `json:"subject" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	PaidBy    string `json:"paidBy" binding:"required"`
	Amount    int64  `json:"amount"`
	URL       string `json:"url"`
	Color     string `json:"color"`
}

func (in *EventInput) toModel() models.Event {
	return models.Event{
		Subject:   in.Subject,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		PaidBy:    in.PaidBy,
		Amount:    in.Amount,
		URL:       in.URL,
		Color:     in.Color,
	}
}

// dayParam 解析路徑中的天數
func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的天數"})
		return 0, false
	}
	return day, true
}

func writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDay), isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "行程操作失敗"})
	}
}

// ListEvents 回傳某一天的行程列表
func (h *EventHandler) ListEvents(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(currentRoomID(c), day)
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// ReplaceEvents 整批替換某一天的行程列表
func (h *EventHandler) ReplaceEvents(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var input []models.Event
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.eventService.ReplaceEvents(currentRoomID(c), day, input); err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "行程列表已更新"})
}

// AddEvent 在某一天新增行程
func (h *EventHandler) AddEvent(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.AddEvent(currentRoomID(c), day, input.toModel())
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEvent 以 ID 更新既有行程
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(currentRoomID(c), day, c.Param("eventId"), input.toModel())
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent 以 ID 刪除行程
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(currentRoomID(c), day, c.Param("eventId")); err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "行程已刪除"})
}
