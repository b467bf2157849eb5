package core

// AuthMessage carries a signed login challenge. The signature is over the
// message returned by Challenge for the same address.
type AuthMessage struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// ActionRequest describes one chain action to coordinate. Amounts are
// user-entered decimal strings; BorrowAmount is only read for borrow.
type ActionRequest struct {
	Action       string `json:"action"`
	Amount       string `json:"amount"`
	BorrowAmount string `json:"borrow_amount"`
}

type ActionResult struct {
	Status  string `json:"status"`
	TxHash  string `json:"tx_hash,omitempty"`
	Message string `json:"message,omitempty"`
}

type AllowanceState struct {
	Approved bool `json:"approved"`
	Loading  bool `json:"loading"`
}

type HistoryEntry struct {
	Action    string `json:"action"`
	TxHash    string `json:"tx_hash,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type LastActionInfo struct {
	Timestamp int64 `json:"timestamp,omitempty"`
	Found     bool  `json:"found"`
}
