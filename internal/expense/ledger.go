package expense

import (
	"math"

	"github.com/hirosyo/Easy-Travel-Planning/internal/models"
)

// Balances 是一組行程結算後的帳目
//
// Debts 是非對稱的債務矩陣：Debts[欠款人][債權人] 為累計金額，
// 反向的債務各自獨立累計，不在這一層互相抵銷；抵銷只發生在
// Net 的計算（應收減應付）
type Balances struct {
	Policy SplitPolicy `json:"policy"`
	// TotalPaid 是成員實際付出的現金總額，EventCount 是付款的行程數
	TotalPaid  map[string]int64            `json:"total_paid"`
	EventCount map[string]int              `json:"event_count"`
	Debts      map[string]map[string]int64 `json:"debts"`
}

// ComputeBalances 彙總一組行程的帳目
//
// TotalPaid 不受攤派方式影響（反映實際付出的現金）；
// Debts 只在均分攤派下累計。付款人 ID 不在成員列表中的行程
// 不計入任何統計（懸空引用，見 Room.MemberName）
func ComputeBalances(members []models.Member, events []models.Event, policy SplitPolicy) *Balances {
	b := &Balances{
		Policy:     policy,
		TotalPaid:  make(map[string]int64, len(members)),
		EventCount: make(map[string]int, len(members)),
		Debts:      make(map[string]map[string]int64),
	}
	for _, m := range members {
		b.TotalPaid[m.ID] = 0
		b.EventCount[m.ID] = 0
	}

	for _, e := range events {
		if _, known := b.TotalPaid[e.PaidBy]; known {
			b.TotalPaid[e.PaidBy] += e.Amount
			b.EventCount[e.PaidBy]++
		}
		for debtor, share := range Split(e, members, policy) {
			if b.Debts[debtor] == nil {
				b.Debts[debtor] = make(map[string]int64)
			}
			b.Debts[debtor][e.PaidBy] += share
		}
	}
	return b
}

// ToReceive 回傳其他成員累計欠 id 的總額
func (b *Balances) ToReceive(id string) int64 {
	var total int64
	for _, creditors := range b.Debts {
		total += creditors[id]
	}
	return total
}

// ToPay 回傳 id 累計欠其他成員的總額
func (b *Balances) ToPay(id string) int64 {
	var total int64
	for _, amount := range b.Debts[id] {
		total += amount
	}
	return total
}

// Net 回傳應收減應付；所有成員的 Net 總和恆為零
func (b *Balances) Net(id string) int64 {
	return b.ToReceive(id) - b.ToPay(id)
}

// AveragePerEvent 回傳 id 每筆付款的平均金額（四捨五入）
// 沒有付款行程時回傳 0
func (b *Balances) AveragePerEvent(id string) int64 {
	count := b.EventCount[id]
	if count == 0 {
		return 0
	}
	return roundDiv(b.TotalPaid[id], count)
}

// GrandTotal 回傳所有成員付出的現金總額
func (b *Balances) GrandTotal() int64 {
	var total int64
	for _, paid := range b.TotalPaid {
		total += paid
	}
	return total
}

// AverageAllEvents 回傳整組行程的平均單筆金額（四捨五入）
func (b *Balances) AverageAllEvents(totalEvents int) int64 {
	if totalEvents == 0 {
		return 0
	}
	return roundDiv(b.GrandTotal(), totalEvents)
}

func roundDiv(total int64, count int) int64 {
	return int64(math.Round(float64(total) / float64(count)))
}
