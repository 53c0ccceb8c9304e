package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/schedule"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
)

// ScheduleHandler 把某一天的行程鋪成 48 格的時間格線給前端繪製
type ScheduleHandler struct {
	eventService *service.EventService
}

// NewScheduleHandler 創建一個新的 ScheduleHandler 實例
func NewScheduleHandler(eventService *service.EventService) *ScheduleHandler {
	return &ScheduleHandler{eventService: eventService}
}

// DayGrid 回傳某一天的時間格線
func (h *ScheduleHandler) DayGrid(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	events, err := h.eventService.ListEvents(currentRoomID(c), day)
	if err != nil {
		writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"day":          day,
		"slot_minutes": schedule.SlotMinutes,
		"slots":        schedule.BuildDayGrid(events),
	})
}
