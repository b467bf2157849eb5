package allowance_test

import (
	"errors"
	"math/big"
	"time"

	"defidesk/internal/allowance"
	"defidesk/internal/allowance/fake"
	"defidesk/internal/amount"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Checker", func() {
	const debounce = 20 * time.Millisecond

	var (
		fakeReader *fake.AllowanceReader
		checker    *allowance.Checker

		token   common.Address
		spender common.Address
		account common.Address
	)

	newChecker := func() *allowance.Checker {
		return allowance.NewChecker(zap.NewNop().Sugar(), fakeReader, token, spender, account, 18, debounce)
	}

	scaled := func(input string) *big.Int {
		value, isFallback := amount.Parse(input, 18, nil)
		Expect(isFallback).To(BeFalse())
		return value
	}

	BeforeEach(func() {
		fakeReader = new(fake.AllowanceReader)
		token = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		spender = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
		account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		checker = newChecker()
	})

	AfterEach(func() {
		checker.Close()
	})

	It("flags loading immediately and resolves after the debounce", func() {
		fakeReader.AllowanceReturns(scaled("100"), nil)

		checker.Check("100")

		_, loading := checker.Status()
		Expect(loading).To(BeTrue())

		Eventually(func() bool {
			approved, loading := checker.Status()
			return approved && !loading
		}).Should(BeTrue())
	})

	It("approves when the allowance equals the requested amount", func() {
		fakeReader.AllowanceReturns(scaled("100"), nil)

		checker.Check("100")

		Eventually(func() bool {
			approved, _ := checker.Status()
			return approved
		}).Should(BeTrue())
	})

	It("rejects when the allowance is one unit short", func() {
		short := new(big.Int).Sub(scaled("100"), big.NewInt(1))
		fakeReader.AllowanceReturns(short, nil)

		checker.Check("100")

		Eventually(func() bool {
			_, loading := checker.Status()
			return !loading
		}).Should(BeTrue())

		approved, _ := checker.Status()
		Expect(approved).To(BeFalse())
	})

	It("collapses a burst of edits into one read with the last amount", func() {
		fakeReader.AllowanceReturns(scaled("300"), nil)

		checker.Check("1")
		checker.Check("25")
		checker.Check("300")

		Eventually(fakeReader.AllowanceCallCount).Should(Equal(1))
		Consistently(fakeReader.AllowanceCallCount, 4*debounce).Should(Equal(1))

		_, gotToken, gotOwner, gotSpender := fakeReader.AllowanceArgsForCall(0)
		Expect(gotToken).To(Equal(token))
		Expect(gotOwner).To(Equal(account))
		Expect(gotSpender).To(Equal(spender))

		approved, _ := checker.Status()
		Expect(approved).To(BeTrue())
	})

	It("resets approval and clears loading on a failed read", func() {
		fakeReader.AllowanceReturnsOnCall(0, scaled("100"), nil)
		fakeReader.AllowanceReturnsOnCall(1, nil, errors.New("node down"))

		checker.Check("100")
		Eventually(func() bool {
			approved, _ := checker.Status()
			return approved
		}).Should(BeTrue())

		checker.Check("100")
		Eventually(func() bool {
			_, loading := checker.Status()
			return !loading
		}).Should(BeTrue())

		approved, _ := checker.Status()
		Expect(approved).To(BeFalse())
	})

	It("treats malformed input as not approvable without querying", func() {
		checker.Check("not-a-number")

		Consistently(fakeReader.AllowanceCallCount, 3*debounce).Should(BeZero())

		approved, loading := checker.Status()
		Expect(approved).To(BeFalse())
		Expect(loading).To(BeFalse())
	})

	It("is a no-op when no account is connected", func() {
		account = common.Address{}
		detached := newChecker()
		defer detached.Close()

		detached.Check("100")

		Consistently(fakeReader.AllowanceCallCount, 3*debounce).Should(BeZero())
		_, loading := detached.Status()
		Expect(loading).To(BeFalse())
	})

	It("never reads after Close", func() {
		checker.Check("100")
		checker.Close()

		Consistently(fakeReader.AllowanceCallCount, 3*debounce).Should(BeZero())
	})
})
