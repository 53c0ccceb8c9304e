package repository

import (
	"fmt"
	"sync"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
)

// 記憶體實作和 gorm 實作遵守同一份粒度契約：
// 整個房間、整天行程列表一次替換。服務層測試靠它跑，不需要資料庫。

type memoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
}

func NewMemoryRoomRepository() RoomRepository {
	return &memoryRoomRepository{rooms: make(map[string]models.Room)}
}

func (r *memoryRoomRepository) Create(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rooms[room.ID]; exists {
		return fmt.Errorf("房間 %s 已存在", room.ID)
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *memoryRoomRepository) FindByID(id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := room
	copied.Members = append(models.MemberList{}, room.Members...)
	return &copied, nil
}

func (r *memoryRoomRepository) Update(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = *room
	return nil
}

func (r *memoryRoomRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, id)
	return nil
}

type dayKey struct {
	roomID string
	day    int
}

type memoryEventRepository struct {
	mu   sync.RWMutex
	days map[dayKey][]models.Event
}

func NewMemoryEventRepository() EventRepository {
	return &memoryEventRepository{days: make(map[dayKey][]models.Event)}
}

func (r *memoryEventRepository) FindByRoomAndDay(roomID string, day int) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events, ok := r.days[dayKey{roomID, day}]
	if !ok {
		return []models.Event{}, nil
	}
	return append([]models.Event{}, events...), nil
}

func (r *memoryEventRepository) ReplaceForDay(roomID string, day int, events []models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days[dayKey{roomID, day}] = append([]models.Event{}, events...)
	return nil
}

func (r *memoryEventRepository) DeleteForRoom(roomID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.days {
		if key.roomID == roomID {
			delete(r.days, key)
		}
	}
	return nil
}

func (r *memoryEventRepository) DeleteBeyondDay(roomID string, day int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.days {
		if key.roomID == roomID && key.day > day {
			delete(r.days, key)
		}
	}
	return nil
}
