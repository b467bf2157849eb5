package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"defidesk/internal/db"

	"github.com/google/uuid"
)

var ErrNonceNotFound error = errors.New("nonce not found")

type DeskRepo struct {
	db Storage
}

func NewDeskRepo(db Storage) *DeskRepo {
	return &DeskRepo{
		db: db,
	}
}

func (r *DeskRepo) Migrate() error {
	err := r.db.MigrateTable(&ActionRecord{}, &Nonce{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SaveAction persists a settled action. The record id and timestamp are
// assigned here so callers only describe the outcome.
func (r *DeskRepo) SaveAction(ctx context.Context, record ActionRecord) error {
	record.ID = uuid.NewString()
	record.Account = strings.ToLower(record.Account)
	record.CreatedAt = time.Now().UTC()

	records := []ActionRecord{record}
	err := r.db.SaveToTable(ctx, &records)
	if err != nil {
		return fmt.Errorf("save action record: %w", err)
	}

	return nil
}

func (r *DeskRepo) GetActionsByAccount(ctx context.Context, account string) ([]ActionRecord, error) {
	records := []ActionRecord{}
	err := r.db.GetAllBy(ctx, "account", strings.ToLower(account), &records)
	if err != nil {
		return nil, fmt.Errorf("get actions by account: %w", err)
	}

	return records, nil
}

// IssueNonce replaces any outstanding challenge for the account with a fresh
// one and returns its value.
func (r *DeskRepo) IssueNonce(ctx context.Context, account string) (string, error) {
	account = strings.ToLower(account)

	err := r.db.DeleteBy(ctx, "account", account, &Nonce{})
	if err != nil {
		return "", fmt.Errorf("discard stale nonce: %w", err)
	}

	nonce := []Nonce{{
		Account:   account,
		Value:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}}
	err = r.db.SaveToTable(ctx, &nonce)
	if err != nil {
		return "", fmt.Errorf("save nonce: %w", err)
	}

	return nonce[0].Value, nil
}

// ConsumeNonce returns the account's outstanding challenge and deletes it, so
// a signature can only be verified once.
func (r *DeskRepo) ConsumeNonce(ctx context.Context, account string) (string, error) {
	account = strings.ToLower(account)

	var nonce Nonce
	err := r.db.GetOneBy(ctx, "account", account, &nonce)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", ErrNonceNotFound
		}
		return "", fmt.Errorf("get nonce by account: %w", err)
	}

	err = r.db.DeleteBy(ctx, "account", account, &Nonce{})
	if err != nil {
		return "", fmt.Errorf("consume nonce: %w", err)
	}

	return nonce.Value, nil
}
