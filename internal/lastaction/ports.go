package lastaction

import (
	"context"

	"defidesk/internal/explorer"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExplorerAPI . ExplorerAPI
type ExplorerAPI interface {
	AccountTransactions(ctx context.Context, address common.Address, startTimestamp int64) ([]explorer.Transaction, error)
	TokenTransfers(ctx context.Context, address, token common.Address, startBlock uint64) ([]explorer.TokenTransfer, error)
}
