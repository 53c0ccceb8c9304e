package models

import (
	"errors"
	"testing"
)

func validEvent() Event {
	return Event{
		ID:        "1",
		Subject:   "城崎温泉",
		StartTime: "09:00",
		EndTime:   "10:30",
		PaidBy:    "1",
		Amount:    1200,
		Color:     "bg-red-300",
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 1440, false}, // 一天的結束
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"09:60", 0, true},
		{"9:00", 0, true}, // 必須補零
		{"0900", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			} else if !errors.Is(err, ErrBadClock) {
				t.Errorf("ParseClock(%q): error = %v, want ErrBadClock", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEventValidate(t *testing.T) {
	valid := validEvent()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Event)
		want   error
	}{
		{"empty subject", func(e *Event) { e.Subject = "  " }, ErrEmptySubject},
		{"missing payer", func(e *Event) { e.PaidBy = "" }, ErrMissingPayer},
		{"bad start", func(e *Event) { e.StartTime = "9am" }, ErrBadClock},
		{"bad end", func(e *Event) { e.EndTime = "10" }, ErrBadClock},
		{"inverted range", func(e *Event) { e.StartTime, e.EndTime = "11:00", "10:00" }, ErrInvalidTimeRange},
		{"zero-length range", func(e *Event) { e.EndTime = e.StartTime }, ErrInvalidTimeRange},
		{"negative amount", func(e *Event) { e.Amount = -1 }, ErrNegativeAmount},
		{"unknown color", func(e *Event) { e.Color = "bg-octarine-300" }, ErrUnknownColor},
	}
	for _, tc := range cases {
		e := validEvent()
		tc.mutate(&e)
		if err := e.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestEventValidateSentinels(t *testing.T) {
	// 免費行程和尚未指定顏色的行程都是合法的
	e := validEvent()
	e.PaidBy = PaidByFree
	e.Amount = 0
	e.Color = ""
	if err := e.Validate(); err != nil {
		t.Fatalf("free event rejected: %v", err)
	}

	// "24:00" 是合法的結束時間
	e = validEvent()
	e.StartTime, e.EndTime = "23:00", "24:00"
	if err := e.Validate(); err != nil {
		t.Fatalf("event ending at 24:00 rejected: %v", err)
	}
}
