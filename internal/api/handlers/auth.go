package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
	"github.com/hirosyo/Easy-Travel-Planning/internal/utils"
	"github.com/hirosyo/Easy-Travel-Planning/pkg/config"
)

// AuthHandler 處理房間的建立與登入
// 這個產品認證的對象是房間，不是個別使用者
type AuthHandler struct {
	roomService *service.RoomService
	jwtSecret   []byte
	tokenExpire time.Duration
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(roomService *service.RoomService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		roomService: roomService,
		jwtSecret:   []byte(cfg.JWT.Secret),
		tokenExpire: time.Duration(cfg.JWT.ExpireHours) * time.Hour,
	}
}

// MemberInput 定義請求中的成員結構；ID 留空時由伺服器補號
type MemberInput struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// CreateRoomInput 定義建立房間請求的結構
type CreateRoomInput struct {
	Name     string        `json:"name" binding:"required"`
	Password string        `json:"password"`
	Days     int           `json:"days" binding:"required"`
	Members  []MemberInput `json:"members" binding:"required"`
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	RoomID   string `json:"room_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateRoom 處理建立房間的請求
// 明文密碼只在這個回應出現一次，之後只能憑它登入
func (h *AuthHandler) CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members := make([]models.Member, len(input.Members))
	for i, m := range input.Members {
		members[i] = models.Member{ID: m.ID, Name: m.Name}
	}

	room, password, err := h.roomService.CreateRoom(input.Name, input.Password, input.Days, members)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建房間失敗"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"room":     room,
		"password": password,
	})
}

// Login 處理房間登入
// 簽出的 token 記著目前所在的房間，之後的請求都以它定位房間
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.Login(input.RoomID, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginFailed) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "登入失敗"})
		return
	}

	token, err := utils.GenerateToken(room.ID, h.jwtSecret, h.tokenExpire)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "獲取token失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "room": room})
}

// isValidationError 區分「拒絕這次寫入」和真正的伺服器錯誤
func isValidationError(err error) bool {
	for _, v := range []error{
		models.ErrEmptyRoomName,
		models.ErrInvalidDays,
		models.ErrNoMembers,
		models.ErrEmptyMemberName,
		models.ErrDuplicateMember,
		models.ErrEmptySubject,
		models.ErrMissingPayer,
		models.ErrBadClock,
		models.ErrInvalidTimeRange,
		models.ErrNegativeAmount,
		models.ErrUnknownColor,
		models.ErrDuplicateEvent,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
