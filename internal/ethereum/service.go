package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"defidesk/internal/contracts"
	"defidesk/internal/wallet"

	gethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	callAttempts      = 3
	callRetryBackoff  = 200 * time.Millisecond
	receiptPollPeriod = time.Second
)

// ChainService reads chain state through the node client and routes mutating
// calls through the wallet provider, which signs and broadcasts them.
type ChainService struct {
	client   EthClient
	provider wallet.Provider
}

func NewChainService(ethClient EthClient, provider wallet.Provider) *ChainService {
	return &ChainService{
		client:   ethClient,
		provider: provider,
	}
}

// Allowance reads ERC20.allowance(owner, spender) on the token contract.
func (s *ChainService) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	ret, err := s.callWithRetry(ctx, gethereum.CallMsg{
		To:   &token,
		Data: contracts.EncodeAllowance(owner, spender),
	})
	if err != nil {
		return nil, fmt.Errorf("allowance call: %w", err)
	}

	value, err := contracts.DecodeUint256(ret)
	if err != nil {
		return nil, fmt.Errorf("decode allowance: %w", err)
	}
	return value, nil
}

// BalanceOf reads ERC20.balanceOf(account) on the token contract.
func (s *ChainService) BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	ret, err := s.callWithRetry(ctx, gethereum.CallMsg{
		To:   &token,
		Data: contracts.EncodeBalanceOf(account),
	})
	if err != nil {
		return nil, fmt.Errorf("balance call: %w", err)
	}

	value, err := contracts.DecodeUint256(ret)
	if err != nil {
		return nil, fmt.Errorf("decode balance: %w", err)
	}
	return value, nil
}

// SendContractCall asks the wallet to sign and broadcast a contract call and
// returns the transaction hash.
func (s *ChainService) SendContractCall(ctx context.Context, from, to common.Address, data []byte, value *big.Int) (common.Hash, error) {
	params := map[string]string{
		"from": from.Hex(),
		"to":   to.Hex(),
		"data": hexutil.Encode(data),
	}
	if value != nil && value.Sign() > 0 {
		params["value"] = hexutil.EncodeBig(value)
	}

	raw, err := s.provider.Request(ctx, "eth_sendTransaction", params)
	if err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	var hashHex string
	if err := json.Unmarshal(raw, &hashHex); err != nil {
		return common.Hash{}, fmt.Errorf("decode transaction hash: %w", err)
	}

	return common.HexToHash(hashHex), nil
}

// WaitMined polls for the transaction receipt until it appears or the context
// ends. Node hiccups during polling are retried, not surfaced.
func (s *ChainService) WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollPeriod)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// ChainID returns the connected node's chain id.
func (s *ChainService) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	return chainID, nil
}

func (s *ChainService) callWithRetry(ctx context.Context, msg gethereum.CallMsg) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= callAttempts; attempt++ {
		ret, err := s.client.CallContract(ctx, msg, nil)
		if err == nil {
			return ret, nil
		}
		lastErr = err
		if attempt < callAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(callRetryBackoff):
			}
		}
	}
	return nil, lastErr
}
