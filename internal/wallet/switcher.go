package wallet

import (
	"context"
	"errors"
	"fmt"

	"defidesk/internal/chainreg"
	"defidesk/internal/errclass"

	"go.uber.org/zap"
)

var ErrSwitchRejected error = errors.New("chain switch rejected by user")

// Switcher moves the wallet to a target chain, registering the chain with the
// wallet first when it is unknown there.
type Switcher struct {
	logs     *zap.SugaredLogger
	provider Provider
}

func NewSwitcher(logger *zap.SugaredLogger, provider Provider) *Switcher {
	return &Switcher{
		logs:     logger,
		provider: provider,
	}
}

// EnsureChain issues wallet_switchEthereumChain for the target chain. A 4902
// response means the wallet has never seen the chain: it is added from the
// registry and the switch retried once. A 4001 at any step is the user
// declining.
func (s *Switcher) EnsureChain(ctx context.Context, chainID uint64) error {
	network, err := chainreg.ByID(chainID)
	if err != nil {
		return fmt.Errorf("resolve network: %w", err)
	}

	err = s.switchChain(ctx, network)
	if err == nil {
		return nil
	}

	narrowed := errclass.FromError(err)
	switch narrowed.Code {
	case errclass.CodeUserRejected:
		return fmt.Errorf("%w: %s", ErrSwitchRejected, narrowed.Message)
	case errclass.CodeUnknownChain:
		s.logs.Infow("chain unknown to wallet, adding it", "chain_id", chainID, "name", network.Name)
	default:
		return fmt.Errorf("switch chain: %w", err)
	}

	if _, err := s.provider.Request(ctx, "wallet_addEthereumChain", network.AddChainParams()); err != nil {
		if errclass.FromError(err).Code == errclass.CodeUserRejected {
			return fmt.Errorf("%w: %s", ErrSwitchRejected, err)
		}
		return fmt.Errorf("add chain: %w", err)
	}

	if err := s.switchChain(ctx, network); err != nil {
		if errclass.FromError(err).Code == errclass.CodeUserRejected {
			return fmt.Errorf("%w: %s", ErrSwitchRejected, err)
		}
		return fmt.Errorf("switch chain after add: %w", err)
	}

	return nil
}

func (s *Switcher) switchChain(ctx context.Context, network chainreg.Network) error {
	params := map[string]string{"chainId": fmt.Sprintf("0x%x", network.ChainID)}
	_, err := s.provider.Request(ctx, "wallet_switchEthereumChain", params)
	return err
}
