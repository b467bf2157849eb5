package lifecycle

import (
	"context"
	"fmt"

	"defidesk/internal/chainreg"
	"defidesk/internal/errclass"
	"defidesk/internal/notify"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Coordinator wraps every chain-mutating action in the three-phase
// notification protocol: pending before the submission starts, optional
// advisory steps while the wallet works, exactly one terminal notification
// once the outcome is known.
//
// The coordinator does not serialize submissions; callers keep at most one in
// flight per form and disable their submit control meanwhile.
type Coordinator struct {
	logs     *zap.SugaredLogger
	notifier Notifier
	receipts ReceiptWaiter
	network  chainreg.Network
}

func NewCoordinator(
	logger *zap.SugaredLogger,
	notifier Notifier,
	receipts ReceiptWaiter,
	network chainreg.Network,
) *Coordinator {
	return &Coordinator{
		logs:     logger,
		notifier: notifier,
		receipts: receipts,
		network:  network,
	}
}

// Execute runs one operation to settlement. The pending notification is
// published before Submit is entered; the returned outcome is settled and
// never Pending.
func (c *Coordinator) Execute(ctx context.Context, op Operation) Outcome {
	var outstanding []string
	dismissOutstanding := func() {
		for _, id := range outstanding {
			c.notifier.Dismiss(id)
		}
		outstanding = nil
	}

	// no auto-expiry: wallet confirmation latency is unbounded
	pendingID := c.notifier.Publish(notify.Notification{
		Kind:        notify.KindPending,
		Title:       fmt.Sprintf("%s pending", op.Type.Title()),
		Description: fmt.Sprintf("Confirm the %s transaction in your wallet.", op.Type),
	})
	outstanding = append(outstanding, pendingID)

	hooks := Hooks{
		OnApprovalRequired: func() {
			id := c.notifier.Publish(notify.Notification{
				Kind:        notify.KindApprovalRequired,
				Title:       "Approval required",
				Description: "An approval transaction is needed first. Confirm it in your wallet.",
			})
			outstanding = append(outstanding, id)
		},
		OnSignatureRequired: func() {
			id := c.notifier.Publish(notify.Notification{
				Kind:        notify.KindSignatureRequired,
				Title:       "Signature required",
				Description: "Sign the message in your wallet to continue.",
			})
			outstanding = append(outstanding, id)
		},
	}

	txHash, err := op.Submit(ctx, hooks)
	if err != nil {
		dismissOutstanding()
		return c.settleError(op, err)
	}

	receipt, err := c.receipts.WaitMined(ctx, txHash)
	dismissOutstanding()
	if err != nil {
		c.logs.Errorw("receipt wait failed", "action", op.Type, "tx_hash", txHash.Hex(), "error", err)
		return c.settleError(op, err)
	}

	duration := notify.SettledDuration
	link := c.network.TxURL(receipt.TxHash.Hex())

	if receipt.Status == types.ReceiptStatusSuccessful {
		c.notifier.Publish(notify.Notification{
			Kind:        notify.KindSuccess,
			Title:       fmt.Sprintf("%s succeeded", op.Type.Title()),
			Description: fmt.Sprintf("Transaction %s confirmed.", receipt.TxHash.Hex()),
			Link:        link,
			Duration:    &duration,
		})
		c.logs.Infow("action succeeded", "action", op.Type, "tx_hash", receipt.TxHash.Hex())
		return Outcome{Status: StatusSucceeded, TxHash: receipt.TxHash}
	}

	c.notifier.Publish(notify.Notification{
		Kind:        notify.KindFailure,
		Title:       fmt.Sprintf("%s failed", op.Type.Title()),
		Description: fmt.Sprintf("Transaction %s reverted on-chain.", receipt.TxHash.Hex()),
		Link:        link,
		Duration:    &duration,
	})
	c.logs.Errorw("action reverted", "action", op.Type, "tx_hash", receipt.TxHash.Hex())
	return Outcome{
		Status:   StatusFailed,
		TxHash:   receipt.TxHash,
		Category: errclass.CategoryRevertReason,
		Message:  "Transaction reverted on-chain.",
	}
}

// settleError classifies a thrown submission error. No receipt means no
// explorer link in the terminal notification.
func (c *Coordinator) settleError(op Operation, err error) Outcome {
	classified := errclass.Classify(errclass.FromError(err))
	duration := notify.SettledDuration

	kind := notify.KindFailure
	title := fmt.Sprintf("%s failed", op.Type.Title())
	if classified.Severity == errclass.SeverityWarning {
		kind = notify.KindWarning
		title = fmt.Sprintf("%s Aborted", op.Type.Title())
	}

	c.notifier.Publish(notify.Notification{
		Kind:        kind,
		Title:       title,
		Description: classified.Message,
		Duration:    &duration,
	})
	c.logs.Warnw("action settled with error",
		"action", op.Type,
		"category", classified.Category.String(),
		"error", err)

	return Outcome{
		Status:   StatusFailed,
		Category: classified.Category,
		Message:  classified.Message,
	}
}
