package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// Member 表示房間內的一位旅伴
// 行程以 ID 弱引用成員：成員被移除後引用仍可能殘留，查詢時必須容忍查不到
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room 表示一個旅行房間，擁有成員列表和固定天數的行程表
type Room struct {
	ID string `gorm:"primaryKey;size:16" json:"id"`
	// 密碼雜湊，json 序列化時會被忽略
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Days         int        `gorm:"not null" json:"days"`
	Members      MemberList `gorm:"type:jsonb" json:"members"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}

// DayEvents 保存某個房間某一天的完整行程列表
// 每次寫入都是整個列表的替換，對應 (room_id, day) 唯一一筆
type DayEvents struct {
	ID        uint      `gorm:"primaryKey"`
	RoomID    string    `gorm:"size:16;uniqueIndex:idx_room_day;not null"`
	Day       int       `gorm:"uniqueIndex:idx_room_day;not null"`
	Events    EventList `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// MemberList 讓成員列表以 jsonb 形式整批存入房間那一列
type MemberList []Member

func (l MemberList) Value() (driver.Value, error) {
	if l == nil {
		l = MemberList{}
	}
	return json.Marshal(l)
}

func (l *MemberList) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	if data == nil {
		*l = MemberList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// EventList 讓整天的行程以單一 jsonb 欄位存取
type EventList []Event

func (l EventList) Value() (driver.Value, error) {
	if l == nil {
		l = EventList{}
	}
	return json.Marshal(l)
}

func (l *EventList) Scan(value interface{}) error {
	data, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	if data == nil {
		*l = EventList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("不支援的 jsonb 來源型別")
	}
}

// MemberName 以 ID 查成員名稱；查不到時回傳空字串而不是失敗
func (r *Room) MemberName(id string) string {
	for _, m := range r.Members {
		if m.ID == id {
			return m.Name
		}
	}
	return ""
}

// ValidateSettings 檢查房間設定（建立與更新時共用）
func (r *Room) ValidateSettings() error {
	if r.Name == "" {
		return ErrEmptyRoomName
	}
	if r.Days < 1 {
		return ErrInvalidDays
	}
	if len(r.Members) == 0 {
		return ErrNoMembers
	}
	seen := make(map[string]bool, len(r.Members))
	for _, m := range r.Members {
		if m.Name == "" {
			return ErrEmptyMemberName
		}
		if seen[m.ID] {
			return ErrDuplicateMember
		}
		seen[m.ID] = true
	}
	return nil
}

// AssignMemberIDs 為還沒有 ID 的成員依序補上編號
// 和前端一樣採用 "1"、"2"… 的遞增字串編號
func AssignMemberIDs(members []Member) []Member {
	next := 0
	for _, m := range members {
		if n, err := strconv.Atoi(m.ID); err == nil && n > next {
			next = n
		}
	}
	out := make([]Member, len(members))
	for i, m := range members {
		if m.ID == "" {
			next++
			m.ID = strconv.Itoa(next)
		}
		out[i] = m
	}
	return out
}
