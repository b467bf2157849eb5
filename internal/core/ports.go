package core

import (
	"context"
	"math/big"
	"time"

	"defidesk/internal/lifecycle"
	"defidesk/internal/repository"
	tokenIssuer "defidesk/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	SaveAction(ctx context.Context, record repository.ActionRecord) error
	GetActionsByAccount(ctx context.Context, account string) ([]repository.ActionRecord, error)
	IssueNonce(ctx context.Context, account string) (string, error)
	ConsumeNonce(ctx context.Context, account string) (string, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error)
	SendContractCall(ctx context.Context, from, to common.Address, data []byte, value *big.Int) (common.Hash, error)
	WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name ChainSwitcher . ChainSwitcher
type ChainSwitcher interface {
	EnsureChain(ctx context.Context, chainID uint64) error
}

//counterfeiter:generate -o fake -fake-name Executor . Executor
type Executor interface {
	Execute(ctx context.Context, op lifecycle.Operation) lifecycle.Outcome
}

//counterfeiter:generate -o fake -fake-name LastActionResolver . LastActionResolver
type LastActionResolver interface {
	Resolve(ctx context.Context, account common.Address, lookback time.Duration) (time.Time, bool, error)
}
