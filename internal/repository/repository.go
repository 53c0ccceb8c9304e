package repository

import (
	"errors"

	"github.com/hirosyo/Easy-Travel-Planning/internal/storage"
)

// ErrNotFound 表示查詢的房間或行程不存在
var ErrNotFound = errors.New("查無資料")

type Repositories struct {
	Room  RoomRepository
	Event EventRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Room:  NewRoomRepository(db),
		Event: NewEventRepository(db),
	}
}

// NewMemoryRepositories 建立純記憶體實作，測試用
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Room:  NewMemoryRoomRepository(),
		Event: NewMemoryEventRepository(),
	}
}
