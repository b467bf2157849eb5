package repository_test

import (
	"context"
	"errors"

	"defidesk/internal/db"
	"defidesk/internal/repository"
	"defidesk/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DeskRepo", func() {
	var (
		repo        *repository.DeskRepo
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewDeskRepo(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate the action and nonce tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.ActionRecord{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Nonce{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveAction", func() {
		var (
			record repository.ActionRecord
			err    error
		)

		BeforeEach(func() {
			record = repository.ActionRecord{
				Account: "0xABCDEF0123456789abcdef0123456789ABCDEF01",
				Action:  "stake",
				TxHash:  "0x123",
				Status:  "succeeded",
				ChainID: 1,
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveAction(ctx, record)
		})

		When("save succeeds", func() {
			It("assigns an id and lowercases the account", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				saved := arg.(*[]repository.ActionRecord)
				Expect(*saved).To(HaveLen(1))
				Expect((*saved)[0].ID).NotTo(BeEmpty())
				Expect((*saved)[0].Account).To(Equal("0xabcdef0123456789abcdef0123456789abcdef01"))
				Expect((*saved)[0].CreatedAt).NotTo(BeZero())
			})
		})

		When("save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetActionsByAccount", func() {
		var (
			records []repository.ActionRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = repo.GetActionsByAccount(ctx, "0xABCdef0123456789abcdef0123456789abcdef01")
		})

		When("the account has history", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					out := dest.(*[]repository.ActionRecord)
					*out = []repository.ActionRecord{
						{Action: "stake", Status: "succeeded"},
						{Action: "borrow", Status: "failed"},
					}
					return nil
				}
			})

			It("queries by the lowercased account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("account"))
				Expect(val).To(Equal("0xabcdef0123456789abcdef0123456789abcdef01"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("IssueNonce", func() {
		var (
			value string
			err   error
		)

		JustBeforeEach(func() {
			value, err = repo.IssueNonce(ctx, "0xABCdef0123456789abcdef0123456789abcdef01")
		})

		When("issuing succeeds", func() {
			It("discards any stale nonce and saves a fresh one", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(value).NotTo(BeEmpty())

				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.DeleteByArgsForCall(0)
				Expect(col).To(Equal("account"))
				Expect(val).To(Equal("0xabcdef0123456789abcdef0123456789abcdef01"))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				_, arg := fakeStorage.SaveToTableArgsForCall(0)
				saved := arg.(*[]repository.Nonce)
				Expect((*saved)[0].Value).To(Equal(value))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ConsumeNonce", func() {
		var (
			value string
			err   error
		)

		JustBeforeEach(func() {
			value, err = repo.ConsumeNonce(ctx, "0xabcdef0123456789abcdef0123456789abcdef01")
		})

		When("a nonce is outstanding", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					nonce := dest.(*repository.Nonce)
					*nonce = repository.Nonce{Account: value.(string), Value: "challenge-123"}
					return nil
				}
			})

			It("returns the challenge and deletes it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("challenge-123"))
				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
			})
		})

		When("no nonce is outstanding", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrNonceNotFound", func() {
				Expect(err).To(MatchError(repository.ErrNonceNotFound))
				Expect(fakeStorage.DeleteByCallCount()).To(BeZero())
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
