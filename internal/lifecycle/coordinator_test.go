package lifecycle_test

import (
	"context"
	"errors"
	"fmt"

	"defidesk/internal/chainreg"
	"defidesk/internal/errclass"
	"defidesk/internal/lifecycle"
	"defidesk/internal/lifecycle/fake"
	"defidesk/internal/notify"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Coordinator", func() {
	var (
		fakeNotifier *fake.Notifier
		fakeReceipts *fake.ReceiptWaiter
		coordinator  *lifecycle.Coordinator
		ctx          context.Context

		txHash common.Hash
	)

	BeforeEach(func() {
		fakeNotifier = new(fake.Notifier)
		fakeReceipts = new(fake.ReceiptWaiter)

		network, err := chainreg.ByID(chainreg.MainnetChainID)
		Expect(err).NotTo(HaveOccurred())

		coordinator = lifecycle.NewCoordinator(zap.NewNop().Sugar(), fakeNotifier, fakeReceipts, network)
		ctx = context.Background()

		txHash = common.HexToHash("0xabc")
		fakeNotifier.PublishStub = func(n notify.Notification) string {
			return fmt.Sprintf("id-%s", n.Kind)
		}
	})

	publishedKinds := func() []notify.Kind {
		kinds := make([]notify.Kind, 0, fakeNotifier.PublishCallCount())
		for i := 0; i < fakeNotifier.PublishCallCount(); i++ {
			kinds = append(kinds, fakeNotifier.PublishArgsForCall(i).Kind)
		}
		return kinds
	}

	When("the submission succeeds on-chain", func() {
		BeforeEach(func() {
			fakeReceipts.WaitMinedReturns(&types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				TxHash: txHash,
			}, nil)
		})

		It("emits pending before submit and success after the receipt", func() {
			var pendingSeenDuringSubmit int

			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionStake,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					pendingSeenDuringSubmit = fakeNotifier.PublishCallCount()
					return txHash, nil
				},
			})

			Expect(pendingSeenDuringSubmit).To(Equal(1))
			Expect(outcome.Status).To(Equal(lifecycle.StatusSucceeded))
			Expect(outcome.TxHash).To(Equal(txHash))

			Expect(publishedKinds()).To(Equal([]notify.Kind{notify.KindPending, notify.KindSuccess}))

			pending := fakeNotifier.PublishArgsForCall(0)
			Expect(pending.Title).To(Equal("Stake pending"))
			Expect(pending.Duration).To(BeNil())

			success := fakeNotifier.PublishArgsForCall(1)
			Expect(success.Description).To(ContainSubstring(txHash.Hex()))
			Expect(success.Link).To(Equal("https://etherscan.io/tx/" + txHash.Hex()))
			Expect(*success.Duration).To(Equal(notify.SettledDuration))

			Expect(fakeNotifier.DismissCallCount()).To(Equal(1))
			Expect(fakeNotifier.DismissArgsForCall(0)).To(Equal("id-pending"))
		})

		It("keeps advisory hook notifications separate from the pending state", func() {
			coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionBorrow,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					hooks.OnApprovalRequired()
					hooks.OnSignatureRequired()
					return txHash, nil
				},
			})

			Expect(publishedKinds()).To(Equal([]notify.Kind{
				notify.KindPending,
				notify.KindApprovalRequired,
				notify.KindSignatureRequired,
				notify.KindSuccess,
			}))

			// pending + both advisories dismissed at settle
			Expect(fakeNotifier.DismissCallCount()).To(Equal(3))
		})
	})

	When("the receipt reports an on-chain revert", func() {
		BeforeEach(func() {
			fakeReceipts.WaitMinedReturns(&types.Receipt{
				Status: types.ReceiptStatusFailed,
				TxHash: txHash,
			}, nil)
		})

		It("emits a failure notification with the explorer link", func() {
			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionRepay,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					return txHash, nil
				},
			})

			Expect(outcome.Status).To(Equal(lifecycle.StatusFailed))
			Expect(publishedKinds()).To(Equal([]notify.Kind{notify.KindPending, notify.KindFailure}))

			failure := fakeNotifier.PublishArgsForCall(1)
			Expect(failure.Title).To(Equal("Repay failed"))
			Expect(failure.Link).NotTo(BeEmpty())
		})
	})

	When("the user rejects the transaction in the wallet", func() {
		It("emits a warning-level aborted notification and no success", func() {
			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionStake,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					return common.Hash{}, &errclass.ProviderError{
						Code:    errclass.CodeUserRejected,
						Message: "User denied transaction signature.",
					}
				},
			})

			Expect(outcome.Status).To(Equal(lifecycle.StatusFailed))
			Expect(outcome.Category).To(Equal(errclass.CategoryUserRejected))

			Expect(publishedKinds()).To(Equal([]notify.Kind{notify.KindPending, notify.KindWarning}))

			aborted := fakeNotifier.PublishArgsForCall(1)
			Expect(aborted.Title).To(Equal("Stake Aborted"))
			Expect(aborted.Link).To(BeEmpty())

			Expect(fakeReceipts.WaitMinedCallCount()).To(BeZero())
		})
	})

	When("the submission fails without a receipt", func() {
		It("classifies unknown errors generically and omits the link", func() {
			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionClaim,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					return common.Hash{}, errors.New("connection reset")
				},
			})

			Expect(outcome.Status).To(Equal(lifecycle.StatusFailed))
			Expect(outcome.Category).To(Equal(errclass.CategoryUnknown))
			Expect(outcome.Message).To(Equal("Unknown error occurred. Please try again."))

			failure := fakeNotifier.PublishArgsForCall(1)
			Expect(failure.Kind).To(Equal(notify.KindFailure))
			Expect(failure.Link).To(BeEmpty())
		})

		It("surfaces a mapped revert reason from the provider payload", func() {
			message := fmt.Sprintf(
				"[ethjs-query] while formatting outputs from RPC '%s'",
				`{"value":{"code":-32603,"data":{"code":3,"message":"execution reverted: BoringMath: Underflow"}}}`,
			)

			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionBorrow,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					return common.Hash{}, &errclass.ProviderError{
						Code:    errclass.CodeInternalRPC,
						Message: message,
					}
				},
			})

			Expect(outcome.Message).To(Equal("Not enough MIM left to borrow."))
			Expect(outcome.Category).To(Equal(errclass.CategoryRevertReason))
		})
	})

	When("waiting for the receipt fails", func() {
		BeforeEach(func() {
			fakeReceipts.WaitMinedReturns(nil, errors.New("context deadline exceeded"))
		})

		It("settles as failed without an explorer link", func() {
			outcome := coordinator.Execute(ctx, lifecycle.Operation{
				Type: lifecycle.ActionUnstake,
				Submit: func(ctx context.Context, hooks lifecycle.Hooks) (common.Hash, error) {
					return txHash, nil
				},
			})

			Expect(outcome.Status).To(Equal(lifecycle.StatusFailed))

			failure := fakeNotifier.PublishArgsForCall(1)
			Expect(failure.Kind).To(Equal(notify.KindFailure))
			Expect(failure.Link).To(BeEmpty())
		})
	})
})
