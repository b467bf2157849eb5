package allowance

import (
	"context"
	"math/big"
	"sync"
	"time"

	"defidesk/internal/amount"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const (
	// DefaultDebounce is how long a burst of input edits must quiet down
	// before the allowance is actually read.
	DefaultDebounce = 500 * time.Millisecond

	queryTimeout = 10 * time.Second
)

// Checker tracks whether an existing on-chain approval covers the amount the
// user is currently typing. One Checker owns one (token, spender) pair; each
// Check replaces the pending debounce timer, so only the last edit in a burst
// triggers a read.
type Checker struct {
	logs     *zap.SugaredLogger
	reader   AllowanceReader
	token    common.Address
	spender  common.Address
	account  common.Address
	decimals int
	debounce time.Duration

	mtx      sync.Mutex
	timer    *time.Timer
	approved bool
	loading  bool
	closed   bool
}

func NewChecker(
	logger *zap.SugaredLogger,
	reader AllowanceReader,
	token, spender, account common.Address,
	decimals int,
	debounce time.Duration,
) *Checker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Checker{
		logs:     logger,
		reader:   reader,
		token:    token,
		spender:  spender,
		account:  account,
		decimals: decimals,
		debounce: debounce,
	}
}

// Check is called on every amount edit. It cancels any scheduled read, flags
// loading and schedules a fresh read after the debounce interval. Without a
// token, spender and account it is a no-op.
func (c *Checker) Check(amountInput string) {
	if c.token == (common.Address{}) || c.spender == (common.Address{}) || c.account == (common.Address{}) {
		return
	}

	required, isFallback := amount.Parse(amountInput, c.decimals, nil)

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.closed {
		return
	}

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	if isFallback {
		// malformed input can never be submitted, so there is nothing
		// to approve
		c.loading = false
		c.approved = false
		return
	}

	c.loading = true
	c.timer = time.AfterFunc(c.debounce, func() {
		c.query(required)
	})
}

// Status reports the last computed approval state and whether a read is
// scheduled or in flight.
func (c *Checker) Status() (approved bool, loading bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.approved, c.loading
}

// Close cancels any pending read. No state updates happen after Close.
func (c *Checker) Close() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checker) query(required *big.Int) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	value, err := c.reader.Allowance(ctx, c.token, c.account, c.spender)

	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.closed {
		return
	}

	c.loading = false
	if err != nil {
		// fail safe: an unreadable allowance is treated as no approval
		c.approved = false
		c.logs.Errorw("allowance read failed", "token", c.token.Hex(), "error", err)
		return
	}

	c.approved = value.Cmp(required) >= 0
}
