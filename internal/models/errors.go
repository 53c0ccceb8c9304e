package models

import "errors"

// 驗證錯誤：拒絕該次寫入，不會讓進程崩潰
var (
	ErrEmptySubject     = errors.New("行程主題不能為空")
	ErrMissingPayer     = errors.New("必須選擇付款人")
	ErrBadClock         = errors.New("時間格式必須為 HH:MM")
	ErrInvalidTimeRange = errors.New("結束時間必須晚於開始時間")
	ErrNegativeAmount   = errors.New("金額不能為負數")
	ErrUnknownColor     = errors.New("無效的行程顏色")
	ErrDuplicateEvent   = errors.New("行程 ID 重複")

	ErrInvalidDays     = errors.New("天數必須至少為 1")
	ErrNoMembers       = errors.New("房間至少需要一位成員")
	ErrEmptyMemberName = errors.New("成員名稱不能為空")
	ErrDuplicateMember = errors.New("成員 ID 重複")
	ErrEmptyRoomName   = errors.New("房間名稱不能為空")
)
