package debt

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/plan"
)

// Partition splits a debt account snapshot into active and locked sets
// under a plan entitlement. It is recomputed from scratch whenever either
// input changes; nothing here is ever patched incrementally.
type Partition struct {
	ActiveIDs                []uuid.UUID
	LockedIDs                []uuid.UUID
	LockedTotalBalance       float64
	LockedDailyInterestDrain float64
}

// LockedSet returns the locked account ids as a set for constant-time
// membership checks.
func (p Partition) LockedSet() map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(p.LockedIDs))
	for _, id := range p.LockedIDs {
		set[id] = true
	}

	return set
}

// PartitionByEntitlement decides which debt accounts stay active under the
// entitlement's cap. Accounts are prioritized by APR descending so the
// costliest debt stays visible; ties break on ascending account id to keep
// the partition deterministic regardless of input order.
func PartitionByEntitlement(accounts []Account, ent plan.Entitlement) Partition {
	if ent.Allows(len(accounts)) {
		active := make([]uuid.UUID, len(accounts))
		for i, acc := range accounts {
			active[i] = acc.ID
		}

		return Partition{ActiveIDs: active}
	}

	sorted := make([]Account, len(accounts))
	copy(sorted, accounts)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AnnualRatePct != sorted[j].AnnualRatePct {
			return sorted[i].AnnualRatePct > sorted[j].AnnualRatePct
		}

		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	limit := ent.MaxActive()
	p := Partition{
		ActiveIDs: make([]uuid.UUID, 0, limit),
		LockedIDs: make([]uuid.UUID, 0, len(sorted)-limit),
	}

	for i, acc := range sorted {
		if i < limit {
			p.ActiveIDs = append(p.ActiveIDs, acc.ID)
			continue
		}

		p.LockedIDs = append(p.LockedIDs, acc.ID)
		p.LockedTotalBalance += acc.Balance
		p.LockedDailyInterestDrain += acc.DailyInterest()
	}

	return p
}
