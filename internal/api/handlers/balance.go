package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/expense"
	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
)

// BalanceHandler 回傳結算後的帳目：每人付了多少、誰欠誰多少
type BalanceHandler struct {
	roomService  *service.RoomService
	eventService *service.EventService
}

// NewBalanceHandler 創建一個新的 BalanceHandler 實例
func NewBalanceHandler(roomService *service.RoomService, eventService *service.EventService) *BalanceHandler {
	return &BalanceHandler{
		roomService:  roomService,
		eventService: eventService,
	}
}

// memberBalance 是帳目表中一位成員的那一列
type memberBalance struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TotalPaid       int64  `json:"total_paid"`
	EventCount      int    `json:"event_count"`
	AveragePerEvent int64  `json:"average_per_event"`
	ToReceive       int64  `json:"to_receive"`
	ToPay           int64  `json:"to_pay"`
	Net             int64  `json:"net"`
}

// DayBalances 結算某一天的帳目
func (h *BalanceHandler) DayBalances(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}

	policy, err := expense.ParsePolicy(c.Query("policy"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.eventService.ListEvents(currentRoomID(c), day)
	if err != nil {
		writeEventError(c, err)
		return
	}

	h.writeBalances(c, events, policy)
}

// TripBalances 結算整趟旅行所有天的帳目
func (h *BalanceHandler) TripBalances(c *gin.Context) {
	policy, err := expense.ParsePolicy(c.Query("policy"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.eventService.TripEvents(currentRoomID(c))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "結算失敗"})
		return
	}

	h.writeBalances(c, events, policy)
}

func (h *BalanceHandler) writeBalances(c *gin.Context, events []models.Event, policy expense.SplitPolicy) {
	room, err := h.roomService.GetRoom(currentRoomID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "房間不存在"})
		return
	}

	balances := expense.ComputeBalances(room.Members, events, policy)

	rows := make([]memberBalance, len(room.Members))
	for i, m := range room.Members {
		rows[i] = memberBalance{
			ID:              m.ID,
			Name:            m.Name,
			TotalPaid:       balances.TotalPaid[m.ID],
			EventCount:      balances.EventCount[m.ID],
			AveragePerEvent: balances.AveragePerEvent(m.ID),
			ToReceive:       balances.ToReceive(m.ID),
			ToPay:           balances.ToPay(m.ID),
			Net:             balances.Net(m.ID),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"policy":             balances.Policy,
		"members":            rows,
		"debts":              balances.Debts,
		"grand_total":        balances.GrandTotal(),
		"total_events":       len(events),
		"average_all_events": balances.AverageAllEvents(len(events)),
	})
}
