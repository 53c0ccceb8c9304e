// Package expense 把一天（或整趟旅行）的付費行程換算成
// 每位成員的支出總額和成員之間的待結清金額。
package expense

import (
	"errors"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
)

// SplitPolicy 決定行程費用如何攤派給付款人以外的成員
type SplitPolicy string

const (
	// PolicyFullLiability 不做任何攤派：費用只記在付款人名下
	PolicyFullLiability SplitPolicy = "full"
	// PolicyEqualSplit 以成員數均分（整數向下取整），付款人以外的
	// 成員各欠付款人一份；除不盡的餘數直接捨棄，不歸給任何人
	PolicyEqualSplit SplitPolicy = "equal"
)

// ErrUnknownPolicy 表示請求了未定義的攤派方式
var ErrUnknownPolicy = errors.New("未定義的費用攤派方式")

// ParsePolicy 解析請求參數中的攤派方式；空字串採用均分
func ParsePolicy(s string) (SplitPolicy, error) {
	switch s {
	case "", string(PolicyEqualSplit):
		return PolicyEqualSplit, nil
	case string(PolicyFullLiability):
		return PolicyFullLiability, nil
	default:
		return "", ErrUnknownPolicy
	}
}

// Split 計算單一行程下，每位成員欠付款人多少
//
// 回傳 成員ID → 應付金額。以下情況一律回傳空映射：
//   - 攤派方式為 PolicyFullLiability（支出統計只看付款總額）
//   - 金額不為正、付款人未設定或為 "free"
//   - 付款人不在成員列表中（懸空引用）
//   - 成員數為 0（避免除以零）
func Split(event models.Event, members []models.Member, policy SplitPolicy) map[string]int64 {
	shares := make(map[string]int64)
	if policy != PolicyEqualSplit {
		return shares
	}
	if event.Amount <= 0 || len(members) == 0 {
		return shares
	}
	if event.PaidBy == "" || event.PaidBy == models.PaidByFree {
		return shares
	}
	payerKnown := false
	for _, m := range members {
		if m.ID == event.PaidBy {
			payerKnown = true
			break
		}
	}
	if !payerKnown {
		return shares
	}

	share := event.Amount / int64(len(members))
	if share == 0 {
		return shares
	}
	for _, m := range members {
		if m.ID == event.PaidBy {
			continue
		}
		shares[m.ID] = share
	}
	return shares
}
