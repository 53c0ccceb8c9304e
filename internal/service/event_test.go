package service

import (
	"errors"
	"testing"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/repository"
)

func newTestServices(t *testing.T) (*Services, *models.Room) {
	t.Helper()

	repos := repository.NewMemoryRepositories()
	services := NewServices(repos)

	room, _, err := services.RoomService.CreateRoom("テスト旅行", "secret", 3, []models.Member{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	return services, room
}

func testEvent(subject string) models.Event {
	return models.Event{
		Subject:   subject,
		StartTime: "09:00",
		EndTime:   "10:00",
		PaidBy:    "1",
		Amount:    500,
	}
}

func TestReplaceEventsRoundTrip(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	events := []models.Event{
		{ID: "e1", Subject: "朝食", StartTime: "08:00", EndTime: "09:00", PaidBy: "1", Amount: 1200, Color: "bg-red-300"},
		{ID: "e2", Subject: "移動", StartTime: "09:00", EndTime: "10:30", PaidBy: models.PaidByFree, Color: "bg-blue-300"},
	}

	// 同一份列表寫兩次，讀回必須完全一致
	for i := 0; i < 2; i++ {
		if err := s.ReplaceEvents(room.ID, 1, events); err != nil {
			t.Fatalf("ReplaceEvents #%d: %v", i+1, err)
		}
	}

	got, err := s.ListEvents(room.ID, 1)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("event count = %d, want 2", len(got))
	}
	for i := range events {
		if got[i] != events[i] {
			t.Fatalf("event %d = %+v, want %+v", i, got[i], events[i])
		}
	}
}

func TestReplaceEventsDuplicateID(t *testing.T) {
	services, room := newTestServices(t)

	events := []models.Event{
		{ID: "e1", Subject: "a", StartTime: "08:00", EndTime: "09:00", PaidBy: "1"},
		{ID: "e1", Subject: "b", StartTime: "10:00", EndTime: "11:00", PaidBy: "1"},
	}
	err := services.EventService.ReplaceEvents(room.ID, 1, events)
	if !errors.Is(err, models.ErrDuplicateEvent) {
		t.Fatalf("error = %v, want ErrDuplicateEvent", err)
	}
}

func TestListEventsEmptyDay(t *testing.T) {
	services, room := newTestServices(t)

	got, err := services.EventService.ListEvents(room.ID, 2)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("events = %v, want empty", got)
	}
}

func TestAddEventAssignsIDAndColor(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	added, err := s.AddEvent(room.ID, 1, testEvent("観光"))
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if added.ID == "" {
		t.Fatalf("no id assigned")
	}
	if added.Color != models.EventColors[0] {
		t.Fatalf("color = %q, want default %q", added.Color, models.EventColors[0])
	}

	got, _ := s.ListEvents(room.ID, 1)
	if len(got) != 1 || got[0].ID != added.ID {
		t.Fatalf("stored events = %+v", got)
	}
}

func TestUpdateEventPreservesOthers(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	first, err := s.AddEvent(room.ID, 1, testEvent("観光"))
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	second, err := s.AddEvent(room.ID, 1, testEvent("夕食"))
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	updated := testEvent("温泉")
	updated.Amount = 2000
	got, err := s.UpdateEvent(room.ID, 1, second.ID, updated)
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	// ID 不因編輯而改變
	if got.ID != second.ID {
		t.Fatalf("id changed: %q -> %q", second.ID, got.ID)
	}

	events, _ := s.ListEvents(room.ID, 1)
	if len(events) != 2 {
		t.Fatalf("event count = %d, want 2", len(events))
	}
	// 沒被編輯的行程原封不動
	if events[0] != *first {
		t.Fatalf("untouched event changed: %+v", events[0])
	}
	if events[1].Subject != "温泉" || events[1].Amount != 2000 {
		t.Fatalf("update not applied: %+v", events[1])
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	services, room := newTestServices(t)

	_, err := services.EventService.UpdateEvent(room.ID, 1, "nope", testEvent("x"))
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("error = %v, want ErrEventNotFound", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	first, _ := s.AddEvent(room.ID, 1, testEvent("観光"))
	second, _ := s.AddEvent(room.ID, 1, testEvent("夕食"))

	if err := s.DeleteEvent(room.ID, 1, first.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	events, _ := s.ListEvents(room.ID, 1)
	if len(events) != 1 || events[0].ID != second.ID {
		t.Fatalf("events after delete = %+v", events)
	}

	if err := s.DeleteEvent(room.ID, 1, first.ID); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("second delete error = %v, want ErrEventNotFound", err)
	}
}

func TestEventValidationRejected(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	bad := testEvent("散歩")
	bad.StartTime, bad.EndTime = "11:00", "10:00"
	if _, err := s.AddEvent(room.ID, 1, bad); !errors.Is(err, models.ErrInvalidTimeRange) {
		t.Fatalf("error = %v, want ErrInvalidTimeRange", err)
	}

	// 被拒絕的寫入不留任何痕跡
	events, _ := s.ListEvents(room.ID, 1)
	if len(events) != 0 {
		t.Fatalf("rejected write persisted: %+v", events)
	}
}

func TestDayOutOfRange(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	if _, err := s.ListEvents(room.ID, 4); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("day 4 error = %v, want ErrInvalidDay", err)
	}
	if _, err := s.AddEvent(room.ID, 0, testEvent("x")); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("day 0 error = %v, want ErrInvalidDay", err)
	}
	if _, err := s.ListEvents("missing", 1); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("missing room error = %v, want ErrRoomNotFound", err)
	}
}

func TestTripEvents(t *testing.T) {
	services, room := newTestServices(t)
	s := services.EventService

	if _, err := s.AddEvent(room.ID, 1, testEvent("一日目")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if _, err := s.AddEvent(room.ID, 3, testEvent("三日目")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	all, err := s.TripEvents(room.ID)
	if err != nil {
		t.Fatalf("TripEvents: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("trip events = %d, want 2", len(all))
	}
}
