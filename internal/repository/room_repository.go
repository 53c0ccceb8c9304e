package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/storage"
)

// RoomRepository 對房間做整列讀寫（成員列表跟著房間一起整批替換）
type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id string) (*models.Room, error)
	Update(room *models.Room) error
	Delete(id string) error
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

func (r *roomRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Room{}).Error
}
