package wallet_test

import (
	"context"
	"errors"

	"defidesk/internal/chainreg"
	"defidesk/internal/errclass"
	"defidesk/internal/wallet"
	"defidesk/internal/wallet/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Switcher", func() {
	var (
		fakeProvider *fake.Provider
		switcher     *wallet.Switcher
		ctx          context.Context
	)

	BeforeEach(func() {
		fakeProvider = new(fake.Provider)
		switcher = wallet.NewSwitcher(zap.NewNop().Sugar(), fakeProvider)
		ctx = context.Background()
	})

	When("the wallet already knows the chain", func() {
		It("switches with a single request", func() {
			err := switcher.EnsureChain(ctx, chainreg.MainnetChainID)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeProvider.RequestCallCount()).To(Equal(1))
			_, method, params := fakeProvider.RequestArgsForCall(0)
			Expect(method).To(Equal("wallet_switchEthereumChain"))
			Expect(params).To(HaveLen(1))
			Expect(params[0]).To(Equal(map[string]string{"chainId": "0x1"}))
		})
	})

	When("the wallet reports the chain as unknown", func() {
		BeforeEach(func() {
			fakeProvider.RequestReturnsOnCall(0, nil, &errclass.ProviderError{
				Code:    errclass.CodeUnknownChain,
				Message: "Unrecognized chain ID",
			})
		})

		It("adds the chain and retries the switch", func() {
			err := switcher.EnsureChain(ctx, chainreg.SepoliaChainID)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeProvider.RequestCallCount()).To(Equal(3))

			_, method, params := fakeProvider.RequestArgsForCall(1)
			Expect(method).To(Equal("wallet_addEthereumChain"))
			added := params[0].(chainreg.AddChainParams)
			Expect(added.ChainName).To(Equal("Sepolia"))
			Expect(added.ChainID).To(Equal("0xaa36a7"))

			_, method, _ = fakeProvider.RequestArgsForCall(2)
			Expect(method).To(Equal("wallet_switchEthereumChain"))
		})
	})

	When("the user rejects the switch", func() {
		BeforeEach(func() {
			fakeProvider.RequestReturns(nil, &errclass.ProviderError{
				Code:    errclass.CodeUserRejected,
				Message: "User rejected the request.",
			})
		})

		It("returns the rejection sentinel", func() {
			err := switcher.EnsureChain(ctx, chainreg.MainnetChainID)
			Expect(err).To(MatchError(wallet.ErrSwitchRejected))
		})
	})

	When("the chain id is not in the registry", func() {
		It("fails without touching the wallet", func() {
			err := switcher.EnsureChain(ctx, 424242)
			Expect(err).To(MatchError(chainreg.ErrUnknownChain))
			Expect(fakeProvider.RequestCallCount()).To(BeZero())
		})
	})

	When("the provider fails with an unrelated error", func() {
		BeforeEach(func() {
			fakeProvider.RequestReturns(nil, errors.New("bridge unreachable"))
		})

		It("propagates the failure", func() {
			err := switcher.EnsureChain(ctx, chainreg.MainnetChainID)
			Expect(err).To(MatchError(ContainSubstring("bridge unreachable")))
			Expect(fakeProvider.RequestCallCount()).To(Equal(1))
		})
	})
})
