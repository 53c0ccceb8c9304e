package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
)

// RoomHandler 處理目前所在房間的查詢與設定
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// currentRoomID 取出中介層放進上下文的房間 ID
func currentRoomID(c *gin.Context) string {
	roomID, _ := c.Get("roomID")
	id, _ := roomID.(string)
	return id
}

// GetRoom 回傳目前所在房間的資訊
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomService.GetRoom(currentRoomID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "房間不存在"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateSettingsInput 定義更新房間設定請求的結構
type UpdateSettingsInput struct {
	Name    string        `json:"name" binding:"required"`
	Days    int           `json:"days" binding:"required"`
	Members []MemberInput `json:"members" binding:"required"`
}

// UpdateSettings 整批替換房間名稱、天數和成員列表
func (h *RoomHandler) UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members := make([]models.Member, len(input.Members))
	for i, m := range input.Members {
		members[i] = models.Member{ID: m.ID, Name: m.Name}
	}

	room, err := h.roomService.UpdateSettings(currentRoomID(c), input.Name, input.Days, members)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新房間設定失敗"})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom 刪除目前所在房間和它所有天的行程
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.roomService.DeleteRoom(currentRoomID(c)); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "刪除房間失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "房間已刪除"})
}
