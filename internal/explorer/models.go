package explorer

import (
	"encoding/json"
	"strconv"
)

// apiResponse is the envelope every explorer endpoint returns. Result is a
// list on success and a plain string on API-level errors, hence RawMessage.
type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Transaction is one row of the account transaction list. The explorer API
// returns every numeric field as a decimal string.
type Transaction struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
}

// Block parses the block number, zero on malformed input.
func (t Transaction) Block() uint64 {
	block, _ := strconv.ParseUint(t.BlockNumber, 10, 64)
	return block
}

// TokenTransfer is one row of the token-transfer list.
type TokenTransfer struct {
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
}

// Time parses the unix timestamp, zero on malformed input.
func (t TokenTransfer) Time() int64 {
	ts, _ := strconv.ParseInt(t.TimeStamp, 10, 64)
	return ts
}
