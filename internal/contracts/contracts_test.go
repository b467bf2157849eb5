package contracts_test

import (
	"defidesk/internal/contracts"
	"encoding/hex"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("calldata builders", func() {
	var (
		owner   common.Address
		spender common.Address
	)

	BeforeEach(func() {
		owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
		spender = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	It("encodes approve with the canonical selector", func() {
		data := contracts.EncodeApprove(spender, big.NewInt(1000))

		Expect(hex.EncodeToString(data[:4])).To(Equal("095ea7b3"))
		Expect(data).To(HaveLen(4 + 64))
		Expect(new(big.Int).SetBytes(data[36:])).To(Equal(big.NewInt(1000)))
	})

	It("encodes allowance with both addresses padded", func() {
		data := contracts.EncodeAllowance(owner, spender)

		Expect(hex.EncodeToString(data[:4])).To(Equal("dd62ed3e"))
		Expect(common.BytesToAddress(data[4:36])).To(Equal(owner))
		Expect(common.BytesToAddress(data[36:])).To(Equal(spender))
	})

	It("encodes balanceOf", func() {
		data := contracts.EncodeBalanceOf(owner)

		Expect(hex.EncodeToString(data[:4])).To(Equal("70a08231"))
		Expect(common.BytesToAddress(data[4:])).To(Equal(owner))
	})

	It("decodes a 32-byte call return", func() {
		word := common.LeftPadBytes(big.NewInt(42).Bytes(), 32)

		value, err := contracts.DecodeUint256(word)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(big.NewInt(42)))
	})

	It("rejects short call returns", func() {
		_, err := contracts.DecodeUint256([]byte{0x01})
		Expect(err).To(HaveOccurred())
	})

	It("packs a borrow cook batch", func() {
		data, err := contracts.EncodeBorrowCook(owner, big.NewInt(500), big.NewInt(100))

		Expect(err).NotTo(HaveOccurred())
		Expect(len(data)).To(BeNumerically(">", 4))

		again, err := contracts.EncodeBorrowCook(owner, big.NewInt(500), big.NewInt(100))
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(data))
	})

	It("packs a repay cook batch", func() {
		data, err := contracts.EncodeRepayCook(owner, big.NewInt(100))

		Expect(err).NotTo(HaveOccurred())
		Expect(len(data)).To(BeNumerically(">", 4))
	})
})
