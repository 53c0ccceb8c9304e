package service

import (
	"github.com/hirosyo/Easy-Travel-Planning/internal/repository"
)

type Services struct {
	RoomService      *RoomService
	EventService     *EventService
	WebSocketManager *WebSocketManager
}

func NewServices(repos *repository.Repositories) *Services {
	wsManager := NewWebSocketManager()

	roomService := NewRoomService(repos.Room, repos.Event, wsManager)
	eventService := NewEventService(repos.Room, repos.Event, wsManager)
	return &Services{
		RoomService:      roomService,
		EventService:     eventService,
		WebSocketManager: wsManager,
	}
}
