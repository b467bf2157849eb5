package explorer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"defidesk/internal/chainreg"
	"defidesk/internal/explorer"
	"defidesk/internal/explorer/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		fakeHTTP *fake.HTTPClient
		client   *explorer.Client
		ctx      context.Context

		account common.Address
		token   common.Address
	)

	jsonResponse := func(body string) *http.Response {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}
	}

	BeforeEach(func() {
		fakeHTTP = new(fake.HTTPClient)

		network, err := chainreg.ByID(chainreg.MainnetChainID)
		Expect(err).NotTo(HaveOccurred())

		client = explorer.NewClient(zap.NewNop().Sugar(), network, "test-key", fakeHTTP)
		ctx = context.Background()

		account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		token = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	Describe("AccountTransactions", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(`{
				"status": "1",
				"message": "OK",
				"result": [
					{"hash": "0xaaa", "from": "0x1", "to": "0x2", "blockNumber": "100", "timeStamp": "1700000000"},
					{"hash": "0xbbb", "from": "0x1", "to": "0x3", "blockNumber": "101", "timeStamp": "1700000500"}
				]
			}`), nil)
		})

		It("queries the transaction list endpoint with the account and window", func() {
			transactions, err := client.AccountTransactions(ctx, account, 1699999999)

			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(2))
			Expect(transactions[0].Hash).To(Equal("0xaaa"))
			Expect(transactions[0].Block()).To(Equal(uint64(100)))

			request := fakeHTTP.DoArgsForCall(0)
			query := request.URL.Query()
			Expect(query.Get("module")).To(Equal("account"))
			Expect(query.Get("action")).To(Equal("txlist"))
			Expect(query.Get("address")).To(Equal(account.Hex()))
			Expect(query.Get("starttimestamp")).To(Equal("1699999999"))
			Expect(query.Get("sort")).To(Equal("asc"))
			Expect(query.Get("apikey")).To(Equal("test-key"))
		})

		It("retries a failed request before succeeding", func() {
			fakeHTTP.DoReturnsOnCall(0, nil, errors.New("connection refused"))
			fakeHTTP.DoReturnsOnCall(1, jsonResponse(`{"status": "1", "message": "OK", "result": []}`), nil)

			transactions, err := client.AccountTransactions(ctx, account, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(BeEmpty())
			Expect(fakeHTTP.DoCallCount()).To(Equal(2))
		})

		It("gives up after exhausting the retry budget", func() {
			fakeHTTP.DoReturns(nil, errors.New("connection refused"))

			_, err := client.AccountTransactions(ctx, account, 0)

			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(fakeHTTP.DoCallCount()).To(Equal(3))
		})

		It("treats an empty history as a valid result", func() {
			fakeHTTP.DoReturns(jsonResponse(`{
				"status": "0",
				"message": "No transactions found",
				"result": []
			}`), nil)

			transactions, err := client.AccountTransactions(ctx, account, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(BeEmpty())
			Expect(fakeHTTP.DoCallCount()).To(Equal(1))
		})

		It("propagates API-level errors", func() {
			fakeHTTP.DoStub = func(*http.Request) (*http.Response, error) {
				return jsonResponse(`{
					"status": "0",
					"message": "Max rate limit reached",
					"result": "rate limited"
				}`), nil
			}

			_, err := client.AccountTransactions(ctx, account, 0)

			Expect(err).To(MatchError(ContainSubstring("Max rate limit reached")))
		})
	})

	Describe("TokenTransfers", func() {
		BeforeEach(func() {
			fakeHTTP.DoReturns(jsonResponse(`{
				"status": "1",
				"message": "OK",
				"result": [
					{"hash": "0xccc", "from": "0x9", "to": "0x1", "contractAddress": "0x2", "blockNumber": "200", "timeStamp": "1700001000"}
				]
			}`), nil)
		})

		It("queries the token transfer endpoint scoped to the contract", func() {
			transfers, err := client.TokenTransfers(ctx, account, token, 150)

			Expect(err).NotTo(HaveOccurred())
			Expect(transfers).To(HaveLen(1))
			Expect(transfers[0].Time()).To(Equal(int64(1700001000)))

			request := fakeHTTP.DoArgsForCall(0)
			query := request.URL.Query()
			Expect(query.Get("action")).To(Equal("tokentx"))
			Expect(query.Get("contractaddress")).To(Equal(token.Hex()))
			Expect(query.Get("startblock")).To(Equal("150"))
		})
	})
})
