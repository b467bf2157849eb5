package lifecycle

import (
	"context"

	"defidesk/internal/errclass"

	"github.com/ethereum/go-ethereum/common"
)

// ActionType tags every mutating chain action the desk coordinates.
type ActionType string

const (
	ActionApprove  ActionType = "approve"
	ActionStake    ActionType = "stake"
	ActionUnstake  ActionType = "unstake"
	ActionBorrow   ActionType = "borrow"
	ActionRepay    ActionType = "repay"
	ActionClaim    ActionType = "claim"
	ActionExitFarm ActionType = "exit"
	ActionDeposit  ActionType = "deposit"
	ActionWithdraw ActionType = "withdraw"
)

var actionTitles = map[ActionType]string{
	ActionApprove:  "Approval",
	ActionStake:    "Stake",
	ActionUnstake:  "Unstake",
	ActionBorrow:   "Borrow",
	ActionRepay:    "Repay",
	ActionClaim:    "Claim",
	ActionExitFarm: "Farm exit",
	ActionDeposit:  "Deposit",
	ActionWithdraw: "Withdraw",
}

// Title returns the human form of the action for notification titles.
func (a ActionType) Title() string {
	if title, ok := actionTitles[a]; ok {
		return title
	}
	return "Transaction"
}

type Status int

const (
	StatusPending Status = iota
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Outcome is the settled result of one coordinated submission. It is created
// once per Execute and never mutated after settling.
type Outcome struct {
	Status   Status
	TxHash   common.Hash
	Category errclass.Category
	Message  string
}

// Hooks let a submission function surface intermediate steps (an approval
// transaction, an off-chain signature request) as advisory notifications.
// They never alter the outer pending state.
type Hooks struct {
	OnApprovalRequired  func()
	OnSignatureRequired func()
}

// SubmitFunc broadcasts the action and returns the transaction hash. The
// wallet-side confirmation happens inside this call, so its latency is
// unbounded.
type SubmitFunc func(ctx context.Context, hooks Hooks) (common.Hash, error)

// Operation is one chain-mutating action handed to the coordinator.
type Operation struct {
	Type   ActionType
	Submit SubmitFunc
}
