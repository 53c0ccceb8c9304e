// Package schedule 將一天的行程對應到固定解析度的時間格線。
//
// 一天固定切成 48 個 30 分鐘的時段（00:00–24:00）。行程以半開區間
// [startTime, endTime) 佔據時段：結束時間恰好等於某時段開始的行程
// 不佔據那個時段。
package schedule

import (
	"fmt"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
)

const (
	// SlotMinutes 是單一時段的長度（分鐘）
	SlotMinutes = 30
	// SlotsPerDay 是一天的時段數
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// Block 表示要在某個時段開始繪製的行程區塊
type Block struct {
	Event models.Event `json:"event"`
	// Blocks 是區塊跨越的連續時段數：ceil((end-start)/30)
	Blocks int `json:"blocks"`
}

// Slot 是格線上的一個時段
type Slot struct {
	Time string `json:"time"` // 時段開始時刻 "HH:MM"
	// Active 是佔據這個時段的所有行程（依半開區間判定）
	Active []models.Event `json:"active"`
	// Starts 只列出在這個時段開始的行程，避免同一行程被重複繪製
	Starts []Block `json:"starts"`
}

// TimeSlots 產生 48 個時段的開始時刻，"00:00" 到 "23:30"
func TimeSlots() []string {
	slots := make([]string, SlotsPerDay)
	for i := range slots {
		hour := i / 2
		minute := "00"
		if i%2 == 1 {
			minute = "30"
		}
		slots[i] = fmt.Sprintf("%02d:%s", hour, minute)
	}
	return slots
}

// DurationBlocks 回傳行程跨越的連續時段數
// 不足一個時段的部分向上取整；無法解析或區間反轉時回傳 0
func DurationBlocks(startTime, endTime string) int {
	start, err := models.ParseClock(startTime)
	if err != nil {
		return 0
	}
	end, err := models.ParseClock(endTime)
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return (end - start + SlotMinutes - 1) / SlotMinutes
}

// EventsAt 回傳佔據指定時段的行程子集
// 時間無法解析的行程一律視為不佔據任何時段
func EventsAt(events []models.Event, slot string) []models.Event {
	slotMin, err := models.ParseClock(slot)
	if err != nil {
		return nil
	}
	var active []models.Event
	for _, e := range events {
		start, err := e.StartMinutes()
		if err != nil {
			continue
		}
		end, err := e.EndMinutes()
		if err != nil {
			continue
		}
		if slotMin >= start && slotMin < end {
			active = append(active, e)
		}
	}
	return active
}

// BuildDayGrid 把整天的行程鋪上 48 格的格線
// 每個行程會出現在它佔據的每個時段的 Active 中，
// 但只有包含其開始時刻的那個時段的 Starts 會帶著它的區塊跨度
func BuildDayGrid(events []models.Event) []Slot {
	times := TimeSlots()
	grid := make([]Slot, len(times))
	for i, t := range times {
		grid[i] = Slot{Time: t, Active: EventsAt(events, t)}
	}
	// Starts 獨立於 Active 計算：開始時刻落在時段中間的行程
	// （例如 12:15）依半開區間不佔據 12:00 那格，但仍從那格開始繪製
	for _, e := range events {
		start, err := e.StartMinutes()
		if err != nil {
			continue
		}
		blocks := DurationBlocks(e.StartTime, e.EndTime)
		if blocks == 0 {
			continue
		}
		index := start / SlotMinutes
		if index < 0 || index >= len(grid) {
			continue
		}
		grid[index].Starts = append(grid[index].Starts, Block{Event: e, Blocks: blocks})
	}
	return grid
}
