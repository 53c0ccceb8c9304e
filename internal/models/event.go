package models

import (
	"fmt"
	"strconv"
	"strings"
)

// PaidByFree 表示免費行程的付款人標記，不參與任何費用計算
const PaidByFree = "free"

// EventColors 是行程可選的固定調色盤（沿用前端的樣式標籤）
var EventColors = []string{
	"bg-red-300",
	"bg-blue-300",
	"bg-green-300",
	"bg-yellow-300",
	"bg-purple-300",
	"bg-pink-300",
	"bg-indigo-300",
}

// Event 表示某一天行程表中的一個行程
// 行程只屬於一個 (房間, 天) 組合，整天的行程列表以 jsonb 形式整批存取
type Event struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	// 時刻為 "HH:MM" 24 小時制；結束時間另外允許 "24:00"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	// PaidBy 是成員 ID、"free" 或空字串
	PaidBy string `json:"paidBy"`
	// Amount 以日圓為單位，非負整數
	Amount int64  `json:"amount"`
	URL    string `json:"url,omitempty"`
	Color  string `json:"color"`
}

// ParseClock 將 "HH:MM" 解析為自 00:00 起的分鐘數
// 接受 00:00–23:59，另外接受 "24:00" 作為一天的結束
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if hour == 24 && minute == 0 {
		return 24 * 60, nil
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return hour*60 + minute, nil
}

// Validate 檢查單一行程是否可寫入
// 和前端不同，這裡明確拒絕開始時間不早於結束時間的區間
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Subject) == "" {
		return ErrEmptySubject
	}
	if e.PaidBy == "" {
		return ErrMissingPayer
	}
	start, err := e.StartMinutes()
	if err != nil {
		return err
	}
	end, err := e.EndMinutes()
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidTimeRange
	}
	if e.Amount < 0 {
		return ErrNegativeAmount
	}
	if e.Color != "" && !validColor(e.Color) {
		return ErrUnknownColor
	}
	return nil
}

// StartMinutes 回傳開始時間的分鐘數
func (e *Event) StartMinutes() (int, error) {
	return ParseClock(e.StartTime)
}

// EndMinutes 回傳結束時間的分鐘數
func (e *Event) EndMinutes() (int, error) {
	return ParseClock(e.EndTime)
}

func validColor(c string) bool {
	for _, color := range EventColors {
		if c == color {
			return true
		}
	}
	return false
}
