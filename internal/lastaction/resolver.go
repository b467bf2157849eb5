package lastaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"defidesk/internal/explorer"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	// DefaultLookback bounds how far back the resolver searches for a
	// qualifying action.
	DefaultLookback = 24 * time.Hour

	resolveAttempts = 3
	retryBackoff    = 300 * time.Millisecond
)

// Resolver determines when an account last interacted with the watched
// contract. A transaction only qualifies when both the plain call to the
// contract and a matching token transfer back to the account are present,
// which filters out failed or unrelated calls.
type Resolver struct {
	logs    *zap.SugaredLogger
	api     ExplorerAPI
	watched common.Address
	token   common.Address
}

func NewResolver(logger *zap.SugaredLogger, api ExplorerAPI, watched, token common.Address) *Resolver {
	return &Resolver{
		logs:    logger,
		api:     api,
		watched: watched,
		token:   token,
	}
}

// Resolve returns the timestamp of the account's qualifying action within the
// lookback window. The second return reports whether one was found; an empty
// history is not an error.
func (r *Resolver) Resolve(ctx context.Context, account common.Address, lookback time.Duration) (time.Time, bool, error) {
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	since := time.Now().Add(-lookback).Unix()

	var transactions []explorer.Transaction
	err := r.withRetry(ctx, "account transactions", func() error {
		var err error
		transactions, err = r.api.AccountTransactions(ctx, account, since)
		return err
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("resolve last action: %w", err)
	}

	hashes, earliestBlock := r.filterToWatched(transactions, account)
	if len(hashes) == 0 {
		return time.Time{}, false, nil
	}

	var transfers []explorer.TokenTransfer
	err = r.withRetry(ctx, "token transfers", func() error {
		var err error
		transfers, err = r.api.TokenTransfers(ctx, account, r.token, earliestBlock)
		return err
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("resolve last action: %w", err)
	}

	accountHex := strings.ToLower(account.Hex())
	for _, transfer := range transfers {
		if !hashes[strings.ToLower(transfer.Hash)] {
			continue
		}
		if strings.ToLower(transfer.To) != accountHex {
			continue
		}
		if ts := transfer.Time(); ts > 0 {
			return time.Unix(ts, 0), true, nil
		}
	}

	return time.Time{}, false, nil
}

// filterToWatched keeps the account's own calls to the watched contract and
// returns the earliest block among them to bound the follow-up query.
func (r *Resolver) filterToWatched(transactions []explorer.Transaction, account common.Address) (map[string]bool, uint64) {
	watchedHex := strings.ToLower(r.watched.Hex())
	accountHex := strings.ToLower(account.Hex())

	hashes := make(map[string]bool)
	var earliest uint64
	for _, tx := range transactions {
		if strings.ToLower(tx.To) != watchedHex || strings.ToLower(tx.From) != accountHex {
			continue
		}
		hashes[strings.ToLower(tx.Hash)] = true
		if block := tx.Block(); earliest == 0 || block < earliest {
			earliest = block
		}
	}
	return hashes, earliest
}

func (r *Resolver) withRetry(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= resolveAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
			r.logs.Infow("retrying explorer lookup", "operation", operation, "attempt", attempt)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}
