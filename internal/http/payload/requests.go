package payload

import (
	"regexp"

	"defidesk/internal/core"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
var amountRegex = regexp.MustCompile(`^[0-9.]*$`)

var knownActions = []any{
	"stake", "unstake", "borrow", "repay", "claim", "exit", "deposit", "withdraw",
}

type ChallengeRequest struct {
	Address string `json:"address"`
}

func (c ChallengeRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, validation.Match(addressRegex)),
	)
}

type AuthRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&a.Signature, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Address:   a.Address,
		Signature: a.Signature,
	}
}

// ActionRequest is the transport form of a desk action. Amount syntax is only
// loosely screened here; the core applies the real parsing rules.
type ActionRequest struct {
	Action       string `json:"action"`
	Amount       string `json:"amount"`
	BorrowAmount string `json:"borrow_amount"`
}

func (a ActionRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Action, validation.Required, validation.In(knownActions...)),
		validation.Field(&a.Amount, validation.Match(amountRegex)),
		validation.Field(&a.BorrowAmount, validation.Match(amountRegex)),
	)
}

func (a ActionRequest) ToRequest() core.ActionRequest {
	return core.ActionRequest{
		Action:       a.Action,
		Amount:       a.Amount,
		BorrowAmount: a.BorrowAmount,
	}
}
