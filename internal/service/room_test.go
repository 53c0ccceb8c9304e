package service

import (
	"errors"
	"testing"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
)

func TestCreateRoomAndLogin(t *testing.T) {
	services, room := newTestServices(t)
	s := services.RoomService

	if len(room.ID) != 6 {
		t.Fatalf("room id = %q, want 6 chars", room.ID)
	}
	if room.PasswordHash == "secret" {
		t.Fatalf("password stored in plaintext")
	}
	// 成員沒帶 ID 時由伺服器依序補號
	wantIDs := []string{"1", "2", "3"}
	for i, m := range room.Members {
		if m.ID != wantIDs[i] {
			t.Fatalf("member ids = %+v", room.Members)
		}
	}

	got, err := s.Login(room.ID, "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != room.ID {
		t.Fatalf("logged into %q, want %q", got.ID, room.ID)
	}

	if _, err := s.Login(room.ID, "wrong"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("wrong password error = %v, want ErrLoginFailed", err)
	}
	if _, err := s.Login("zzzzzz", "secret"); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("unknown room error = %v, want ErrLoginFailed", err)
	}
}

func TestCreateRoomGeneratesPassword(t *testing.T) {
	services, _ := newTestServices(t)

	_, password, err := services.RoomService.CreateRoom("別の旅行", "", 2, []models.Member{{Name: "X"}})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if len(password) != 6 {
		t.Fatalf("generated password = %q, want 6 chars", password)
	}
}

func TestCreateRoomValidation(t *testing.T) {
	services, _ := newTestServices(t)
	s := services.RoomService

	if _, _, err := s.CreateRoom("x", "pw", 0, []models.Member{{Name: "A"}}); !errors.Is(err, models.ErrInvalidDays) {
		t.Fatalf("zero days error = %v", err)
	}
	if _, _, err := s.CreateRoom("x", "pw", 1, nil); !errors.Is(err, models.ErrNoMembers) {
		t.Fatalf("no members error = %v", err)
	}
}

func TestUpdateSettingsShrinkDaysCascades(t *testing.T) {
	services, room := newTestServices(t)

	if _, err := services.EventService.AddEvent(room.ID, 3, testEvent("三日目")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if _, err := services.EventService.AddEvent(room.ID, 1, testEvent("一日目")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	updated, err := services.RoomService.UpdateSettings(room.ID, room.Name, 2, room.Members)
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.Days != 2 {
		t.Fatalf("days = %d, want 2", updated.Days)
	}

	// 第 3 天已超出範圍
	if _, err := services.EventService.ListEvents(room.ID, 3); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("day 3 error = %v, want ErrInvalidDay", err)
	}
	// 第 1 天不受影響
	day1, err := services.EventService.ListEvents(room.ID, 1)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(day1) != 1 {
		t.Fatalf("day 1 events = %d, want 1", len(day1))
	}
}

func TestUpdateSettingsRemovedMemberDangles(t *testing.T) {
	services, room := newTestServices(t)

	event := testEvent("高い夕食")
	event.PaidBy = "3"
	if _, err := services.EventService.AddEvent(room.ID, 1, event); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	// 移除成員 3：引用他的行程留著，名字查不到而已
	updated, err := services.RoomService.UpdateSettings(room.ID, room.Name, room.Days, room.Members[:2])
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	events, _ := services.EventService.ListEvents(room.ID, 1)
	if len(events) != 1 || events[0].PaidBy != "3" {
		t.Fatalf("dangling event lost: %+v", events)
	}
	if got := updated.MemberName("3"); got != "" {
		t.Fatalf("MemberName(3) = %q, want empty", got)
	}
}

func TestDeleteRoomCascades(t *testing.T) {
	services, room := newTestServices(t)

	if _, err := services.EventService.AddEvent(room.ID, 1, testEvent("x")); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	if err := services.RoomService.DeleteRoom(room.ID); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}

	if _, err := services.RoomService.GetRoom(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("room still found after delete: %v", err)
	}
	if err := services.RoomService.DeleteRoom(room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("second delete error = %v, want ErrRoomNotFound", err)
	}
}
