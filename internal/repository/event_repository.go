package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/storage"
)

// EventRepository 以 (房間, 天) 為粒度整批讀寫行程列表
// 對應原本 "events_{roomId}_day_{day}" 一個鍵一整天的存取方式
type EventRepository interface {
	// FindByRoomAndDay 回傳該天的行程列表；沒有資料時回傳空列表
	FindByRoomAndDay(roomID string, day int) ([]models.Event, error)
	// ReplaceForDay 整批替換該天的行程列表
	ReplaceForDay(roomID string, day int, events []models.Event) error
	// DeleteForRoom 刪除房間的所有行程（房間刪除時的連帶清理）
	DeleteForRoom(roomID string) error
	// DeleteBeyondDay 刪除超過指定天數的行程（縮短旅行天數時的清理）
	DeleteBeyondDay(roomID string, day int) error
}

type eventRepository struct {
	db *storage.PostgresDB
}

func NewEventRepository(db *storage.PostgresDB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindByRoomAndDay(roomID string, day int) ([]models.Event, error) {
	var record models.DayEvents
	err := r.db.Where("room_id = ? AND day = ?", roomID, day).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Events, nil
}

func (r *eventRepository) ReplaceForDay(roomID string, day int, events []models.Event) error {
	var record models.DayEvents
	err := r.db.Where("room_id = ? AND day = ?", roomID, day).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.DayEvents{RoomID: roomID, Day: day, Events: events}
		return r.db.Create(&record).Error
	}
	if err != nil {
		return err
	}
	record.Events = events
	return r.db.Save(&record).Error
}

func (r *eventRepository) DeleteForRoom(roomID string) error {
	return r.db.Where("room_id = ?", roomID).Delete(&models.DayEvents{}).Error
}

func (r *eventRepository) DeleteBeyondDay(roomID string, day int) error {
	return r.db.Where("room_id = ? AND day > ?", roomID, day).Delete(&models.DayEvents{}).Error
}
