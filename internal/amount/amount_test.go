package amount_test

import (
	"defidesk/internal/amount"
	"math/big"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	When("the input is a whole number", func() {
		It("scales it by 10^decimals", func() {
			value, isFallback := amount.Parse("100", 18, nil)
			Expect(isFallback).To(BeFalse())

			expected, _ := new(big.Int).SetString("100000000000000000000", 10)
			Expect(value).To(Equal(expected))
		})
	})

	When("the input has fractional digits", func() {
		It("scales the fraction to the full precision", func() {
			value, isFallback := amount.Parse("1.5", 18, nil)
			Expect(isFallback).To(BeFalse())

			expected, _ := new(big.Int).SetString("1500000000000000000", 10)
			Expect(value).To(Equal(expected))
		})

		It("accepts exactly decimals fractional digits", func() {
			value, isFallback := amount.Parse("0.123456", 6, nil)
			Expect(isFallback).To(BeFalse())
			Expect(value).To(Equal(big.NewInt(123456)))
		})

		It("accepts a bare fractional form", func() {
			value, isFallback := amount.Parse(".5", 6, nil)
			Expect(isFallback).To(BeFalse())
			Expect(value).To(Equal(big.NewInt(500000)))
		})
	})

	When("the input round-trips through Format", func() {
		It("renders a numerically equal decimal", func() {
			for _, input := range []string{"100", "1.5", "0.000001", "42.000042"} {
				value, isFallback := amount.Parse(input, 18, nil)
				Expect(isFallback).To(BeFalse())

				again, isFallback := amount.Parse(amount.Format(value, 18), 18, nil)
				Expect(isFallback).To(BeFalse())
				Expect(again).To(Equal(value), "input %q", input)
			}
		})
	})

	When("many goroutines parse at once", func() {
		It("produces correct values with no shared-state interference", func() {
			inputs := []string{"1", "1.5", "0.25", "0.125", "0.0625", "0.03125", "12.345678", "0.000000000000000001"}

			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					for i := 0; i < 200; i++ {
						input := inputs[i%len(inputs)]
						value, isFallback := amount.Parse(input, 18, nil)
						Expect(isFallback).To(BeFalse())

						again, isFallback := amount.Parse(amount.Format(value, 18), 18, nil)
						Expect(isFallback).To(BeFalse())
						Expect(again).To(Equal(value), "input %q", input)
					}
				}()
			}
			wg.Wait()
		})
	})

	When("the input is malformed", func() {
		DescribeTable("it returns the fallback",
			func(input string) {
				value, isFallback := amount.Parse(input, 18, nil)
				Expect(isFallback).To(BeTrue())
				Expect(value.Sign()).To(BeZero())
			},
			Entry("empty", ""),
			Entry("letters", "abc"),
			Entry("mixed", "12a"),
			Entry("two points", "1.2.3"),
			Entry("lone point", "."),
			Entry("negative", "-1"),
			Entry("spaces inside", "1 2"),
		)

		It("returns a copy of a custom fallback", func() {
			fallback := big.NewInt(7)
			value, isFallback := amount.Parse("nope", 18, fallback)
			Expect(isFallback).To(BeTrue())
			Expect(value).To(Equal(big.NewInt(7)))

			value.SetInt64(99)
			Expect(fallback.Int64()).To(Equal(int64(7)))
		})

		It("rejects more fractional digits than the precision allows", func() {
			_, isFallback := amount.Parse("0.1234567", 6, nil)
			Expect(isFallback).To(BeTrue())
		})
	})
})

var _ = Describe("ValidateTokenInput", func() {
	var max *big.Int

	BeforeEach(func() {
		max, _ = new(big.Int).SetString("500000000000000000000", 10) // 500 @ 18
	})

	It("accepts empty input as not yet entered", func() {
		Expect(amount.ValidateTokenInput("", 18, max)).To(Succeed())
		Expect(amount.ValidateTokenInput("  ", 18, max)).To(Succeed())
	})

	It("rejects unparseable input", func() {
		err := amount.ValidateTokenInput("12x", 18, max)
		Expect(err).To(MatchError(amount.ErrInvalidNumber))
	})

	It("rejects negative input as invalid", func() {
		err := amount.ValidateTokenInput("-5", 18, max)
		Expect(err).To(MatchError(amount.ErrInvalidNumber))
	})

	It("rejects zero", func() {
		err := amount.ValidateTokenInput("0", 18, max)
		Expect(err).To(MatchError(amount.ErrNotPositive))
	})

	It("rejects amounts above the balance", func() {
		err := amount.ValidateTokenInput("500.000000000000000001", 18, max)
		Expect(err).To(MatchError(amount.ErrInsufficientBalance))
	})

	It("accepts an amount equal to the balance", func() {
		Expect(amount.ValidateTokenInput("500", 18, max)).To(Succeed())
	})
})
