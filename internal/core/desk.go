package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"defidesk/internal/allowance"
	"defidesk/internal/amount"
	"defidesk/internal/contracts"
	"defidesk/internal/lifecycle"
	"defidesk/internal/repository"
	tokenIssuer "defidesk/pkg/jwt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var ErrAccountNotValid error = errors.New("account address is not valid")
var ErrChallengeNotFound error = errors.New("no login challenge outstanding")
var ErrSignatureInvalid error = errors.New("signature does not match the account")
var ErrSessionNotValid error = errors.New("session token is not valid")
var ErrUnknownAction error = errors.New("unknown action")
var ErrActionInFlight error = errors.New("another action is already in flight for this account")

const (
	sessionHours = 24

	tokenDecimals = 18
	farmPoolID    = 0
)

// Contracts holds the deployed addresses the desk coordinates against.
type Contracts struct {
	StakeToken  common.Address
	StakePool   common.Address
	StableToken common.Address
	Cauldron    common.Address
	Farm        common.Address
}

// Desk is the coordination core: it authenticates wallet owners, plans and
// submits chain actions through the lifecycle coordinator, and answers
// allowance, history and last-action queries.
type Desk struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	chain     ChainService
	switcher  ChainSwitcher
	executor  Executor
	resolver  LastActionResolver
	checker   *allowance.Checker
	contracts Contracts
	chainID   uint64

	mtx      sync.Mutex
	inFlight map[common.Address]struct{}
}

func NewDesk(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	chain ChainService,
	switcher ChainSwitcher,
	executor Executor,
	resolver LastActionResolver,
	checker *allowance.Checker,
	contracts Contracts,
	chainID uint64,
) *Desk {
	return &Desk{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		chain:     chain,
		switcher:  switcher,
		executor:  executor,
		resolver:  resolver,
		checker:   checker,
		contracts: contracts,
		chainID:   chainID,
		inFlight:  map[common.Address]struct{}{},
	}
}

// Challenge issues a fresh login nonce for the account and returns the exact
// message the wallet must sign.
func (d *Desk) Challenge(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", ErrAccountNotValid
	}

	nonce, err := d.repo.IssueNonce(ctx, address)
	if err != nil {
		return "", fmt.Errorf("issue nonce: %w", err)
	}

	return loginMessage(address, nonce), nil
}

// Authenticate verifies a personal_sign signature over the outstanding
// challenge and issues a session token for the proven account.
func (d *Desk) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	if !common.IsHexAddress(msg.Address) {
		return "", ErrAccountNotValid
	}

	nonce, err := d.repo.ConsumeNonce(ctx, msg.Address)
	if err != nil {
		if errors.Is(err, repository.ErrNonceNotFound) {
			return "", ErrChallengeNotFound
		}
		return "", fmt.Errorf("consume nonce: %w", err)
	}

	recovered, err := recoverSigner(loginMessage(msg.Address, nonce), msg.Signature)
	if err != nil {
		return "", ErrSignatureInvalid
	}
	if recovered != common.HexToAddress(msg.Address) {
		return "", ErrSignatureInvalid
	}

	tokenInfo := tokenIssuer.TokenInfo{
		Account:    strings.ToLower(msg.Address),
		Subject:    recovered.Hex(),
		Expiration: sessionHours,
	}
	token := d.jwtIssuer.Generate(tokenInfo)
	signed, err := d.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// SubmitAction plans the requested action, makes sure the wallet sits on the
// right chain, runs the submission through the coordinator and records the
// settled outcome.
func (d *Desk) SubmitAction(ctx context.Context, token string, req ActionRequest) (ActionResult, error) {
	account, err := d.accountFromToken(token)
	if err != nil {
		return ActionResult{}, err
	}

	// one action at a time per account, the coordinator itself does not gate
	if err := d.acquire(account); err != nil {
		return ActionResult{}, err
	}
	defer d.release(account)

	action := lifecycle.ActionType(req.Action)
	plan, err := d.plan(ctx, account, action, req)
	if err != nil {
		return ActionResult{}, err
	}

	if err := d.switcher.EnsureChain(ctx, d.chainID); err != nil {
		return ActionResult{}, fmt.Errorf("ensure chain: %w", err)
	}

	outcome := d.executor.Execute(ctx, lifecycle.Operation{
		Type: action,
		Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
			if plan.spendAmount != nil {
				if err := d.ensureAllowance(ctx, account, plan, hooks); err != nil {
					return common.Hash{}, err
				}
			}
			// the signature hook is reserved for off-chain message signatures;
			// plain sends are already covered by the pending notification
			return d.chain.SendContractCall(ctx, account, plan.target, plan.calldata, nil)
		},
	})

	record := repository.ActionRecord{
		Account: account.Hex(),
		Action:  string(action),
		Status:  outcome.Status.String(),
		ChainID: d.chainID,
		Message: outcome.Message,
	}
	if outcome.TxHash != (common.Hash{}) {
		record.TxHash = outcome.TxHash.Hex()
	}
	if err := d.repo.SaveAction(ctx, record); err != nil {
		d.logs.Errorw("failed to save action record", "error", err, "account", account.Hex(), "action", action)
	}

	result := ActionResult{
		Status:  outcome.Status.String(),
		Message: outcome.Message,
	}
	if outcome.TxHash != (common.Hash{}) {
		result.TxHash = outcome.TxHash.Hex()
	}
	return result, nil
}

// CheckAllowance feeds the amount input into the debounced checker and
// reports its current state. Callers poll while loading is set.
func (d *Desk) CheckAllowance(input string) AllowanceState {
	d.checker.Check(input)
	approved, loading := d.checker.Status()
	return AllowanceState{Approved: approved, Loading: loading}
}

// History lists the account's settled actions.
func (d *Desk) History(ctx context.Context, token string) ([]HistoryEntry, error) {
	account, err := d.accountFromToken(token)
	if err != nil {
		return nil, err
	}

	records, err := d.repo.GetActionsByAccount(ctx, account.Hex())
	if err != nil {
		return nil, fmt.Errorf("get account history: %w", err)
	}

	entries := make([]HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = HistoryEntry{
			Action:    record.Action,
			TxHash:    record.TxHash,
			Status:    record.Status,
			Message:   record.Message,
			CreatedAt: record.CreatedAt.Unix(),
		}
	}
	return entries, nil
}

// LastAction resolves when the account last acted on the watched contract.
func (d *Desk) LastAction(ctx context.Context, token string) (LastActionInfo, error) {
	account, err := d.accountFromToken(token)
	if err != nil {
		return LastActionInfo{}, err
	}

	ts, found, err := d.resolver.Resolve(ctx, account, 0)
	if err != nil {
		return LastActionInfo{}, fmt.Errorf("resolve last action: %w", err)
	}

	info := LastActionInfo{Found: found}
	if found {
		info.Timestamp = ts.Unix()
	}
	return info, nil
}

// Close releases the debounced allowance checker.
func (d *Desk) Close() {
	d.checker.Close()
}

func (d *Desk) acquire(account common.Address) error {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if _, busy := d.inFlight[account]; busy {
		return ErrActionInFlight
	}
	d.inFlight[account] = struct{}{}
	return nil
}

func (d *Desk) release(account common.Address) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	delete(d.inFlight, account)
}

type actionPlan struct {
	target     common.Address
	calldata   []byte
	spendToken common.Address
	// spendAmount is nil when the action moves no tokens out of the account
	spendAmount *big.Int
}

func (d *Desk) plan(ctx context.Context, account common.Address, action lifecycle.ActionType, req ActionRequest) (actionPlan, error) {
	switch action {
	case lifecycle.ActionStake:
		value, err := d.parseAgainstBalance(ctx, req.Amount, d.contracts.StakeToken, account)
		if err != nil {
			return actionPlan{}, err
		}
		return actionPlan{
			target:      d.contracts.StakePool,
			calldata:    contracts.EncodeStake(value),
			spendToken:  d.contracts.StakeToken,
			spendAmount: value,
		}, nil

	case lifecycle.ActionUnstake:
		value, err := d.parseAgainstBalance(ctx, req.Amount, d.contracts.StakePool, account)
		if err != nil {
			return actionPlan{}, err
		}
		return actionPlan{
			target:   d.contracts.StakePool,
			calldata: contracts.EncodeUnstake(account, value),
		}, nil

	case lifecycle.ActionBorrow:
		collateral, err := d.parseAgainstBalance(ctx, req.Amount, d.contracts.StakeToken, account)
		if err != nil {
			return actionPlan{}, err
		}
		borrow, err := parseRequired(req.BorrowAmount)
		if err != nil {
			return actionPlan{}, err
		}
		calldata, err := contracts.EncodeBorrowCook(account, collateral, borrow)
		if err != nil {
			return actionPlan{}, fmt.Errorf("encode borrow: %w", err)
		}
		return actionPlan{
			target:      d.contracts.Cauldron,
			calldata:    calldata,
			spendToken:  d.contracts.StakeToken,
			spendAmount: collateral,
		}, nil

	case lifecycle.ActionRepay:
		value, err := d.parseAgainstBalance(ctx, req.Amount, d.contracts.StableToken, account)
		if err != nil {
			return actionPlan{}, err
		}
		calldata, err := contracts.EncodeRepayCook(account, value)
		if err != nil {
			return actionPlan{}, fmt.Errorf("encode repay: %w", err)
		}
		return actionPlan{
			target:      d.contracts.Cauldron,
			calldata:    calldata,
			spendToken:  d.contracts.StableToken,
			spendAmount: value,
		}, nil

	case lifecycle.ActionDeposit:
		value, err := d.parseAgainstBalance(ctx, req.Amount, d.contracts.StakeToken, account)
		if err != nil {
			return actionPlan{}, err
		}
		return actionPlan{
			target:      d.contracts.Farm,
			calldata:    contracts.EncodeFarmDeposit(farmPoolID, value),
			spendToken:  d.contracts.StakeToken,
			spendAmount: value,
		}, nil

	case lifecycle.ActionWithdraw:
		value, err := parseRequired(req.Amount)
		if err != nil {
			return actionPlan{}, err
		}
		return actionPlan{
			target:   d.contracts.Farm,
			calldata: contracts.EncodeFarmWithdraw(farmPoolID, value),
		}, nil

	case lifecycle.ActionClaim:
		// a zero deposit pays out pending rewards without moving principal
		return actionPlan{
			target:   d.contracts.Farm,
			calldata: contracts.EncodeFarmDeposit(farmPoolID, new(big.Int)),
		}, nil

	case lifecycle.ActionExitFarm:
		return actionPlan{
			target:   d.contracts.Farm,
			calldata: contracts.EncodeFarmExit(farmPoolID),
		}, nil
	}

	return actionPlan{}, ErrUnknownAction
}

// parseRequired scales an amount the plan must carry. Empty or fallback
// input is rejected so a coerced zero can never reach the chain.
func parseRequired(input string) (*big.Int, error) {
	if err := amount.ValidateTokenInput(input, tokenDecimals, nil); err != nil {
		return nil, err
	}
	value, isFallback := amount.Parse(input, tokenDecimals, nil)
	if isFallback || value.Sign() <= 0 {
		return nil, amount.ErrNotPositive
	}
	return value, nil
}

// parseAgainstBalance validates the entered amount against the account's
// token balance and returns it in scaled units.
func (d *Desk) parseAgainstBalance(ctx context.Context, input string, token, account common.Address) (*big.Int, error) {
	balance, err := d.chain.BalanceOf(ctx, token, account)
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}
	if err := amount.ValidateTokenInput(input, tokenDecimals, balance); err != nil {
		return nil, err
	}

	value, _ := amount.Parse(input, tokenDecimals, nil)
	if value.Sign() <= 0 {
		return nil, amount.ErrNotPositive
	}
	return value, nil
}

// ensureAllowance tops up the spender approval before the main submission
// when the current allowance cannot cover the planned spend.
func (d *Desk) ensureAllowance(ctx context.Context, account common.Address, plan actionPlan, hooks lifecycle.Hooks) error {
	current, err := d.chain.Allowance(ctx, plan.spendToken, account, plan.target)
	if err != nil {
		return fmt.Errorf("read allowance: %w", err)
	}
	if current.Cmp(plan.spendAmount) >= 0 {
		return nil
	}

	if hooks.OnApprovalRequired != nil {
		hooks.OnApprovalRequired()
	}

	calldata := contracts.EncodeApprove(plan.target, contracts.MaxUint256)
	hash, err := d.chain.SendContractCall(ctx, account, plan.spendToken, calldata, nil)
	if err != nil {
		return fmt.Errorf("send approval: %w", err)
	}

	receipt, err := d.chain.WaitMined(ctx, hash)
	if err != nil {
		return fmt.Errorf("wait approval: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.New("approval transaction reverted")
	}

	d.logs.Infow("spender approved", "token", plan.spendToken.Hex(), "spender", plan.target.Hex(), "tx", hash.Hex())
	return nil
}

func (d *Desk) accountFromToken(token string) (common.Address, error) {
	claims, err := d.jwtIssuer.Validate(token)
	if err != nil {
		return common.Address{}, fmt.Errorf("validate jwt token: %w", err)
	}

	account, ok := claims["account"].(string)
	if !ok || !common.IsHexAddress(account) {
		return common.Address{}, ErrSessionNotValid
	}
	return common.HexToAddress(account), nil
}

func loginMessage(address, nonce string) string {
	return fmt.Sprintf("defidesk sign-in\naccount: %s\nnonce: %s", strings.ToLower(address), nonce)
}

func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, errors.New("signature length is not 65 bytes")
	}

	// wallets return the legacy 27/28 recovery id
	recovery := make([]byte, len(sig))
	copy(recovery, sig)
	if recovery[crypto.RecoveryIDOffset] >= 27 {
		recovery[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), recovery)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
