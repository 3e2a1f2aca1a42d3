package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 10 * time.Second
	accountsPath   = "/api/accounts"
	cashflowPath   = "/api/cashflow"
)

// Client fetches read-only snapshots from the ledger service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a ledger client. A zero timeout falls back to the
// default.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// FetchSnapshot pulls accounts and recurring items concurrently and
// assembles them into a single snapshot. Cash account balances are summed
// into LiquidCash; debt accounts are mapped individually.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		accounts []AccountDTO
		items    []RecurringItemDTO
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.getJSON(gctx, accountsPath, &accounts)
	})

	g.Go(func() error {
		return c.getJSON(gctx, cashflowPath, &items)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching ledger snapshot: %w", err)
	}

	snap := &Snapshot{FetchedAt: time.Now().UTC()}

	for _, a := range accounts {
		if a.IsDebt() {
			snap.Accounts = append(snap.Accounts, a.ToAccount())
			continue
		}

		snap.LiquidCash += a.Balance
	}

	for _, item := range items {
		snap.Items = append(snap.Items, item.ToRecurringItem())
	}

	return snap, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger returned status %d for %s: %s", resp.StatusCode, path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshalling %s response: %w", path, err)
	}

	return nil
}
