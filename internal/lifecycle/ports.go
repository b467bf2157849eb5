package lifecycle

import (
	"context"

	"defidesk/internal/notify"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Publish(notification notify.Notification) string
	Dismiss(id string)
}

//counterfeiter:generate -o fake -fake-name ReceiptWaiter . ReceiptWaiter
type ReceiptWaiter interface {
	WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}
