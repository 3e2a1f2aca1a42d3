package snapshot

import (
	"context"
	"fmt"
	"sync"

	"github.com/mrodal/paydown/internal/ledger"
)

// Fetcher produces a fresh ledger snapshot.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*ledger.Snapshot, error)
}

// Holder keeps the most recent ledger snapshot and serializes installs.
// Every Refresh claims a generation number before fetching; a fetch that
// finishes after a younger one has already installed is discarded, so slow
// responses can never roll the snapshot backwards.
type Holder struct {
	fetcher Fetcher

	mu        sync.Mutex
	nextGen   uint64
	installed uint64
	current   *ledger.Snapshot
}

func NewHolder(fetcher Fetcher) *Holder {
	return &Holder{fetcher: fetcher}
}

// Refresh fetches a new snapshot and installs it unless a newer generation
// landed first. It returns whichever snapshot is current after the install
// decision.
func (h *Holder) Refresh(ctx context.Context) (*ledger.Snapshot, error) {
	h.mu.Lock()
	h.nextGen++
	gen := h.nextGen
	h.mu.Unlock()

	snap, err := h.fetcher.FetchSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if gen > h.installed {
		h.installed = gen
		h.current = snap
	}

	return h.current, nil
}

// Current returns the installed snapshot, or false when no refresh has
// succeeded yet.
func (h *Holder) Current() (*ledger.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current, h.current != nil
}
