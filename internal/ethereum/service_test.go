package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"defidesk/internal/ethereum"
	ethfake "defidesk/internal/ethereum/fake"
	walletfake "defidesk/internal/wallet/fake"

	gethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ChainService", func() {
	var (
		fakeClient   *ethfake.EthClient
		fakeProvider *walletfake.Provider
		service      *ethereum.ChainService
		ctx          context.Context

		token   common.Address
		owner   common.Address
		spender common.Address
	)

	BeforeEach(func() {
		fakeClient = new(ethfake.EthClient)
		fakeProvider = new(walletfake.Provider)
		service = ethereum.NewChainService(fakeClient, fakeProvider)
		ctx = context.Background()

		token = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
		spender = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	Describe("Allowance", func() {
		It("reads and decodes the allowance", func() {
			fakeClient.CallContractReturns(common.LeftPadBytes(big.NewInt(777).Bytes(), 32), nil)

			value, err := service.Allowance(ctx, token, owner, spender)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(big.NewInt(777)))

			_, msg, _ := fakeClient.CallContractArgsForCall(0)
			Expect(*msg.To).To(Equal(token))
		})

		It("retries transient call failures", func() {
			fakeClient.CallContractReturnsOnCall(0, nil, errors.New("429 Too Many Requests"))
			fakeClient.CallContractReturnsOnCall(1, common.LeftPadBytes(big.NewInt(5).Bytes(), 32), nil)

			value, err := service.Allowance(ctx, token, owner, spender)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(big.NewInt(5)))
			Expect(fakeClient.CallContractCallCount()).To(Equal(2))
		})

		It("gives up after exhausting attempts", func() {
			fakeClient.CallContractReturns(nil, errors.New("node down"))

			_, err := service.Allowance(ctx, token, owner, spender)
			Expect(err).To(MatchError(ContainSubstring("node down")))
			Expect(fakeClient.CallContractCallCount()).To(Equal(3))
		})
	})

	Describe("SendContractCall", func() {
		It("routes the call through the wallet and returns the hash", func() {
			fakeProvider.RequestReturns([]byte(`"0x0000000000000000000000000000000000000000000000000000000000000abc"`), nil)

			hash, err := service.SendContractCall(ctx, owner, token, []byte{0x01, 0x02}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(common.HexToHash("0xabc")))

			_, method, params := fakeProvider.RequestArgsForCall(0)
			Expect(method).To(Equal("eth_sendTransaction"))
			call := params[0].(map[string]string)
			Expect(call["from"]).To(Equal(owner.Hex()))
			Expect(call["to"]).To(Equal(token.Hex()))
			Expect(call["data"]).To(Equal("0x0102"))
			Expect(call).NotTo(HaveKey("value"))
		})

		It("includes a positive value", func() {
			fakeProvider.RequestReturns([]byte(`"0x1"`), nil)

			_, err := service.SendContractCall(ctx, owner, token, nil, big.NewInt(10))
			Expect(err).NotTo(HaveOccurred())

			_, _, params := fakeProvider.RequestArgsForCall(0)
			call := params[0].(map[string]string)
			Expect(call["value"]).To(Equal("0xa"))
		})

		It("propagates wallet failures", func() {
			fakeProvider.RequestReturns(nil, errors.New("User rejected"))

			_, err := service.SendContractCall(ctx, owner, token, nil, nil)
			Expect(err).To(MatchError(ContainSubstring("User rejected")))
		})
	})

	Describe("WaitMined", func() {
		It("polls until the receipt appears", func() {
			receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
			fakeClient.TransactionReceiptReturnsOnCall(0, nil, gethereum.NotFound)
			fakeClient.TransactionReceiptReturnsOnCall(1, receipt, nil)

			got, err := service.WaitMined(ctx, common.HexToHash("0xabc"))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(receipt))
			Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
		})

		It("stops when the context ends", func() {
			fakeClient.TransactionReceiptReturns(nil, gethereum.NotFound)

			shortCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			_, err := service.WaitMined(shortCtx, common.HexToHash("0xabc"))
			Expect(err).To(MatchError(context.DeadlineExceeded))
		})
	})

	Describe("ChainID", func() {
		It("returns the node chain id", func() {
			fakeClient.ChainIDReturns(big.NewInt(1), nil)

			chainID, err := service.ChainID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(chainID).To(Equal(big.NewInt(1)))
		})
	})
})
