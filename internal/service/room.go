package service

import (
	"errors"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
	"github.com/hirosyo/Easy-Travel-Planning/internal/repository"
)

var (
	// ErrRoomNotFound 對使用者呈現為「請回到首頁重新登入」，不是程式錯誤
	ErrRoomNotFound = errors.New("房間不存在")
	// ErrLoginFailed 登入失敗一律回同一個訊息，不區分房間不存在或密碼錯誤
	ErrLoginFailed = errors.New("房間ID或密碼錯誤")
)

const idCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

type RoomService struct {
	roomRepo  repository.RoomRepository
	eventRepo repository.EventRepository
	wsManager *WebSocketManager
}

func NewRoomService(roomRepo repository.RoomRepository, eventRepo repository.EventRepository, wsManager *WebSocketManager) *RoomService {
	return &RoomService{
		roomRepo:  roomRepo,
		eventRepo: eventRepo,
		wsManager: wsManager,
	}
}

// CreateRoom 建立新房間
// 房間 ID 一律由伺服器產生；密碼留空時也由伺服器產生，
// 明文密碼只在回傳值出現一次，存進資料庫的是 bcrypt 雜湊
func (s *RoomService) CreateRoom(name, password string, days int, members []models.Member) (*models.Room, string, error) {
	if password == "" {
		password = randomID(6)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	room := &models.Room{
		Name:         name,
		Days:         days,
		Members:      models.AssignMemberIDs(members),
		PasswordHash: string(hashed),
	}
	if err := room.ValidateSettings(); err != nil {
		return nil, "", err
	}

	// ID 撞到已存在的房間就重抽，最多試幾次
	for attempt := 0; attempt < 5; attempt++ {
		room.ID = randomID(6)
		if _, err := s.roomRepo.FindByID(room.ID); errors.Is(err, repository.ErrNotFound) {
			break
		} else if err != nil {
			return nil, "", err
		}
		room.ID = ""
	}
	if room.ID == "" {
		return nil, "", errors.New("無法產生房間ID")
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, "", err
	}
	return room, password, nil
}

// Login 驗證房間 ID 與密碼，成功時回傳房間
func (s *RoomService) Login(roomID, password string) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLoginFailed
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(room.PasswordHash), []byte(password)) != nil {
		return nil, ErrLoginFailed
	}
	return room, nil
}

func (s *RoomService) GetRoom(roomID string) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateSettings 整批替換房間設定
// 縮短天數會連帶刪掉超出範圍那幾天的行程；
// 移除成員不會動到引用他的行程（弱引用，查名字時回空字串）
func (s *RoomService) UpdateSettings(roomID, name string, days int, members []models.Member) (*models.Room, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	previousDays := room.Days
	room.Name = name
	room.Days = days
	room.Members = models.AssignMemberIDs(members)
	if err := room.ValidateSettings(); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Update(room); err != nil {
		return nil, err
	}

	if days < previousDays {
		if err := s.eventRepo.DeleteBeyondDay(roomID, days); err != nil {
			return nil, err
		}
	}

	s.wsManager.BroadcastSystemMessage(roomID, "房間設定已更新")
	return room, nil
}

// DeleteRoom 刪除房間並連帶清掉所有天的行程
func (s *RoomService) DeleteRoom(roomID string) error {
	if _, err := s.GetRoom(roomID); err != nil {
		return err
	}
	if err := s.eventRepo.DeleteForRoom(roomID); err != nil {
		return err
	}
	return s.roomRepo.Delete(roomID)
}

func randomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = idCharset[rand.Intn(len(idCharset))]
	}
	return string(b)
}
