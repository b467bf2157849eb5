package errclass_test

import (
	"defidesk/internal/errclass"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classify", func() {
	When("the wallet reports a user rejection", func() {
		It("classifies as user rejected with warning severity", func() {
			classified := errclass.Classify(errclass.RPCError{
				Code:    4001,
				Message: "User denied transaction signature.",
			})

			Expect(classified.Category).To(Equal(errclass.CategoryUserRejected))
			Expect(classified.Severity).To(Equal(errclass.SeverityWarning))
			Expect(classified.Message).To(Equal("User denied transaction signature."))
		})
	})

	When("the provider wraps a known revert reason", func() {
		It("substitutes the friendly borrow message", func() {
			message := fmt.Sprintf(
				"[ethjs-query] while formatting outputs from RPC '%s'",
				`{"value":{"code":-32603,"data":{"code":3,"message":"execution reverted: BoringMath: Underflow"}}}`,
			)

			classified := errclass.Classify(errclass.RPCError{Code: -32603, Message: message})

			Expect(classified.Category).To(Equal(errclass.CategoryRevertReason))
			Expect(classified.Message).To(Equal("Not enough MIM left to borrow."))
			Expect(classified.Severity).To(Equal(errclass.SeverityError))
		})

		It("substitutes the friendly lock message", func() {
			message := fmt.Sprintf(
				"[ethjs-query] while formatting outputs from RPC '%s'",
				`{"value":{"code":-32603,"data":{"code":3,"message":"execution reverted: Wait for LockUp"}}}`,
			)

			classified := errclass.Classify(errclass.RPCError{Code: -32603, Message: message})

			Expect(classified.Message).To(Equal("Your stake is still locked."))
		})
	})

	When("the provider wraps an unmapped revert reason", func() {
		It("surfaces the raw extracted reason", func() {
			message := fmt.Sprintf(
				"[ethjs-query] while formatting outputs from RPC '%s'",
				`{"value":{"code":-32603,"data":{"code":3,"message":"execution reverted: Cauldron: user insolvent"}}}`,
			)

			classified := errclass.Classify(errclass.RPCError{Code: -32603, Message: message})

			Expect(classified.Category).To(Equal(errclass.CategoryRevertReason))
			Expect(classified.Message).To(Equal("Cauldron: user insolvent"))
		})
	})

	When("the embedded payload is malformed", func() {
		It("falls back to the generic internal message without panicking", func() {
			message := "[ethjs-query] while formatting outputs from RPC '{\"value\": not-json'"

			classified := errclass.Classify(errclass.RPCError{Code: -32603, Message: message})

			Expect(classified.Category).To(Equal(errclass.CategoryUnknown))
			Expect(classified.Message).To(Equal("Internal JSON-RPC error."))
		})

		It("falls back when the marker is missing entirely", func() {
			classified := errclass.Classify(errclass.RPCError{Code: -32603, Message: "boom"})

			Expect(classified.Message).To(Equal("Internal JSON-RPC error."))
		})
	})

	When("the code is unrecognized", func() {
		It("classifies as unknown with the generic message", func() {
			classified := errclass.Classify(errclass.RPCError{Code: -32000, Message: "nonce too low"})

			Expect(classified.Category).To(Equal(errclass.CategoryUnknown))
			Expect(classified.Message).To(Equal("Unknown error occurred. Please try again."))
		})
	})

	It("is deterministic for the same input", func() {
		input := errclass.RPCError{Code: 4001, Message: "User denied"}
		Expect(errclass.Classify(input)).To(Equal(errclass.Classify(input)))
	})
})

var _ = Describe("FromError", func() {
	It("keeps the code of a provider error", func() {
		err := &errclass.ProviderError{Code: 4001, Message: "User denied"}

		narrowed := errclass.FromError(fmt.Errorf("send transaction: %w", err))

		Expect(narrowed.Code).To(Equal(4001))
		Expect(narrowed.Message).To(Equal("User denied"))
	})

	It("leaves the code zero for plain errors", func() {
		narrowed := errclass.FromError(errors.New("connection refused"))

		Expect(narrowed.Code).To(BeZero())
		Expect(narrowed.Message).To(Equal("connection refused"))
	})

	It("returns a zero value for nil", func() {
		Expect(errclass.FromError(nil)).To(Equal(errclass.RPCError{}))
	})
})
