package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"defidesk/internal/chainreg"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	requestAttempts = 3
	retryBackoff    = 300 * time.Millisecond

	noTransactionsMessage = "No transactions found"
)

// Client reads account history from the chain's block-explorer API. The base
// URL comes from the network registry, so mainnet and testnet deployments hit
// their matching explorer variant.
type Client struct {
	logs       *zap.SugaredLogger
	apiURL     string
	apiKey     string
	httpClient HTTPClient
}

func NewClient(logger *zap.SugaredLogger, network chainreg.Network, apiKey string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		logs:       logger,
		apiURL:     network.ExplorerAPIURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// AccountTransactions lists the account's transactions no older than
// startTimestamp, oldest first.
func (c *Client) AccountTransactions(ctx context.Context, address common.Address, startTimestamp int64) ([]Transaction, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "txlist")
	query.Set("address", address.Hex())
	query.Set("starttimestamp", strconv.FormatInt(startTimestamp, 10))
	query.Set("sort", "asc")

	var transactions []Transaction
	if err := c.get(ctx, query, &transactions); err != nil {
		return nil, fmt.Errorf("account transactions: %w", err)
	}
	return transactions, nil
}

// TokenTransfers lists the account's transfers of one token from startBlock
// onward, oldest first.
func (c *Client) TokenTransfers(ctx context.Context, address, token common.Address, startBlock uint64) ([]TokenTransfer, error) {
	query := url.Values{}
	query.Set("module", "account")
	query.Set("action", "tokentx")
	query.Set("address", address.Hex())
	query.Set("contractaddress", token.Hex())
	query.Set("startblock", strconv.FormatUint(startBlock, 10))
	query.Set("sort", "asc")

	var transfers []TokenTransfer
	if err := c.get(ctx, query, &transfers); err != nil {
		return nil, fmt.Errorf("token transfers: %w", err)
	}
	return transfers, nil
}

// get performs the API call with bounded retries, decoding the result list
// into target. An empty history is a valid response, not an error.
func (c *Client) get(ctx context.Context, query url.Values, target any) error {
	if c.apiKey != "" {
		query.Set("apikey", c.apiKey)
	}
	requestURL := c.apiURL + "?" + query.Encode()

	var lastErr error
	for attempt := 1; attempt <= requestAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
			c.logs.Infow("retrying explorer request", "attempt", attempt, "action", query.Get("action"))
		}

		lastErr = c.getOnce(ctx, requestURL, target)
		if lastErr == nil {
			return nil
		}
	}

	return lastErr
}

func (c *Client) getOnce(ctx context.Context, requestURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("explorer request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("explorer responded %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	if envelope.Status != "1" {
		if envelope.Message == noTransactionsMessage {
			return nil
		}
		return fmt.Errorf("explorer error: %s", envelope.Message)
	}

	if err := json.Unmarshal(envelope.Result, target); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}
