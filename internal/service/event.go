package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/repository"
)

var (
	ErrEventNotFound = errors.New("行程不存在")
	ErrInvalidDay    = errors.New("超出旅行天數範圍")
)

// EventService 負責單一天行程列表的讀寫
// 每次變更都是「整批讀出 → 轉換 → 整批寫回」，寫回後廣播通知同房間的連線
type EventService struct {
	roomRepo  repository.RoomRepository
	eventRepo repository.EventRepository
	wsManager *WebSocketManager
}

func NewEventService(roomRepo repository.RoomRepository, eventRepo repository.EventRepository, wsManager *WebSocketManager) *EventService {
	return &EventService{
		roomRepo:  roomRepo,
		eventRepo: eventRepo,
		wsManager: wsManager,
	}
}

// ListEvents 回傳某一天的行程列表；那天還沒有行程時回傳空列表
func (s *EventService) ListEvents(roomID string, day int) ([]models.Event, error) {
	if _, err := s.room(roomID, day); err != nil {
		return nil, err
	}
	return s.eventRepo.FindByRoomAndDay(roomID, day)
}

// ReplaceEvents 整批替換某一天的行程列表
func (s *EventService) ReplaceEvents(roomID string, day int, events []models.Event) error {
	if _, err := s.room(roomID, day); err != nil {
		return err
	}
	seen := make(map[string]bool, len(events))
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = newEventID()
		}
		if seen[events[i].ID] {
			return models.ErrDuplicateEvent
		}
		seen[events[i].ID] = true
		if events[i].Color == "" {
			events[i].Color = models.EventColors[0]
		}
		if err := events[i].Validate(); err != nil {
			return err
		}
	}
	if err := s.eventRepo.ReplaceForDay(roomID, day, events); err != nil {
		return err
	}
	s.wsManager.BroadcastEventsUpdated(roomID, day)
	return nil
}

// AddEvent 在某一天加入一個行程並回傳補完 ID 後的行程
func (s *EventService) AddEvent(roomID string, day int, event models.Event) (*models.Event, error) {
	if _, err := s.room(roomID, day); err != nil {
		return nil, err
	}
	event.ID = newEventID()
	if event.Color == "" {
		event.Color = models.EventColors[0]
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindByRoomAndDay(roomID, day)
	if err != nil {
		return nil, err
	}
	events = append(events, event)
	if err := s.eventRepo.ReplaceForDay(roomID, day, events); err != nil {
		return nil, err
	}
	s.wsManager.BroadcastEventsUpdated(roomID, day)
	return &event, nil
}

// UpdateEvent 以 ID 更新既有行程；ID 不變，其他行程不受影響
func (s *EventService) UpdateEvent(roomID string, day int, eventID string, updated models.Event) (*models.Event, error) {
	if _, err := s.room(roomID, day); err != nil {
		return nil, err
	}
	updated.ID = eventID
	if updated.Color == "" {
		updated.Color = models.EventColors[0]
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindByRoomAndDay(roomID, day)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range events {
		if events[i].ID == eventID {
			events[i] = updated
			found = true
			break
		}
	}
	if !found {
		return nil, ErrEventNotFound
	}
	if err := s.eventRepo.ReplaceForDay(roomID, day, events); err != nil {
		return nil, err
	}
	s.wsManager.BroadcastEventsUpdated(roomID, day)
	return &updated, nil
}

// DeleteEvent 以 ID 刪除行程
func (s *EventService) DeleteEvent(roomID string, day int, eventID string) error {
	if _, err := s.room(roomID, day); err != nil {
		return err
	}
	events, err := s.eventRepo.FindByRoomAndDay(roomID, day)
	if err != nil {
		return err
	}
	kept := events[:0]
	found := false
	for _, e := range events {
		if e.ID == eventID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEventNotFound
	}
	if err := s.eventRepo.ReplaceForDay(roomID, day, kept); err != nil {
		return err
	}
	s.wsManager.BroadcastEventsUpdated(roomID, day)
	return nil
}

// TripEvents 蒐集整趟旅行所有天的行程（結算整趟帳目用）
func (s *EventService) TripEvents(roomID string) ([]models.Event, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	var all []models.Event
	for day := 1; day <= room.Days; day++ {
		events, err := s.eventRepo.FindByRoomAndDay(roomID, day)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}
	return all, nil
}

func (s *EventService) room(roomID string, day int) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	if day < 1 || day > room.Days {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidDay, day)
	}
	return room, nil
}

// newEventID 沿用前端以時間戳當行程 ID 的做法
// 取奈秒避免同一毫秒內連續新增撞出相同 ID
func newEventID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
