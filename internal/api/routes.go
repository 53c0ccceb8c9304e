package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirosyo/Easy-Travel-Planning/internal/api/handlers"
	"github.com/hirosyo/Easy-Travel-Planning/internal/middleware"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
	"github.com/hirosyo/Easy-Travel-Planning/pkg/config"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.RoomService, cfg)
	roomHandler := handlers.NewRoomHandler(services.RoomService)
	eventHandler := handlers.NewEventHandler(services.EventService)
	scheduleHandler := handlers.NewScheduleHandler(services.EventService)
	balanceHandler := handlers.NewBalanceHandler(services.RoomService, services.EventService)
	wsHandler := handlers.NewWebSocketHandler(services.WebSocketManager, services.RoomService)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 房間建立與登入
		api.POST("/rooms", authHandler.CreateRoom)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由：一律以 token 裡的房間為準
	room := api.Group("/rooms/current")
	room.Use(middleware.AuthMiddleware([]byte(cfg.JWT.Secret)))
	{
		// 房間資訊與設定
		room.GET("", roomHandler.GetRoom)
		room.PUT("", roomHandler.UpdateSettings)
		room.DELETE("", roomHandler.DeleteRoom)

		// 整趟旅行的帳目結算
		room.GET("/balances", balanceHandler.TripBalances)

		// WebSocket 連接點：行程變更的即時通知
		room.GET("/ws", wsHandler.HandleWebSocket)

		// 單一天的行程操作
		days := room.Group("/days/:day")
		{
			days.GET("/events", eventHandler.ListEvents)
			days.PUT("/events", eventHandler.ReplaceEvents)
			days.POST("/events", eventHandler.AddEvent)
			days.PUT("/events/:eventId", eventHandler.UpdateEvent)
			days.DELETE("/events/:eventId", eventHandler.DeleteEvent)

			// 時間格線與當天帳目
			days.GET("/grid", scheduleHandler.DayGrid)
			days.GET("/balances", balanceHandler.DayBalances)
		}
	}
}
