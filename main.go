package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirosyo/Easy-Travel-Planning/internal/api"
	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/repository"
	"github.com/hirosyo/Easy-Travel-Planning/internal/service"
	"github.com/hirosyo/Easy-Travel-Planning/internal/storage"
	"github.com/hirosyo/Easy-Travel-Planning/pkg/config"
)

func main() {
	// .env 不存在時沿用外部環境變數
	_ = godotenv.Load()

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉資料庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	// 房間一列一筆，行程以 (房間, 天) 為單位整批存取
	if err := db.AutoMigrate(&models.Room{}, &models.DayEvents{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// 初始化 repositories 和 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	// 設置 Gin 路由
	r := gin.Default()
	api.SetupRoutes(r, services, cfg)

	// 啟動伺服器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
