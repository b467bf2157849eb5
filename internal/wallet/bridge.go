package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"defidesk/internal/errclass"
)

// Bridge is the JSON-RPC Provider implementation talking to the paired
// wallet bridge over HTTP.
type Bridge struct {
	url        string
	httpClient *http.Client
	requestID  atomic.Int64
}

func NewBridge(url string) *Bridge {
	return &Bridge{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	JSONRPC string                  `json:"jsonrpc"`
	ID      int64                   `json:"id"`
	Result  json.RawMessage         `json:"result"`
	Error   *errclass.ProviderError `json:"error,omitempty"`
}

// Request performs one JSON-RPC call. Wallet-level failures come back as
// *errclass.ProviderError so their numeric code survives classification.
func (b *Bridge) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      b.requestID.Add(1),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallet bridge request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bridge response: %w", err)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal bridge response: %w", err)
	}
	if decoded.Error != nil {
		return nil, decoded.Error
	}

	return decoded.Result, nil
}
