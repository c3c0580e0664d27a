// Package store persists the transaction list as a single JSON array
// under one key of the on-device key/value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"centavo/internal/kvstore"
	"centavo/internal/transaction"
)

// storageKey is the fixed key the full transaction list lives under.
const storageKey = "expense_tracker_transactions"

type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// record is the wire shape of one persisted transaction. Amount is in
// currency units (not cents) and Date is RFC 3339, matching the layout
// documented for the storage entry. Amount is a pointer so a missing
// field can be told apart from zero.
type record struct {
	ID          string   `json:"id"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Description string   `json:"description,omitempty"`
}

func toRecord(tx transaction.Transaction) record {
	amount := float64(tx.Amount) / 100.0

	return record{
		ID:          tx.ID,
		Amount:      &amount,
		Category:    string(tx.Category),
		Type:        string(tx.Type),
		Date:        tx.Date.Format(time.RFC3339Nano),
		Description: tx.Description,
	}
}

// toTransaction validates and converts a stored record. It returns false
// for records missing an id or amount, or whose date does not parse;
// such records are dropped on load while the rest of the list survives.
func (r record) toTransaction() (transaction.Transaction, bool) {
	if r.ID == "" || r.Amount == nil {
		return transaction.Transaction{}, false
	}

	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return transaction.Transaction{}, false
	}

	return transaction.Transaction{
		ID:          r.ID,
		Amount:      int64(math.Round(*r.Amount * 100)),
		Category:    transaction.Category(r.Category),
		Type:        transaction.Type(r.Type),
		Date:        date,
		Description: r.Description,
	}, true
}

// Load reads the persisted list. Failure never propagates to the caller:
// a read error counts as nothing stored, a malformed payload is removed
// from storage entirely, and individually corrupted records are dropped.
func (s *Store) Load(ctx context.Context) ([]transaction.Transaction, error) {
	data, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			slog.Error("reading stored transactions", "error", err)
		}

		return nil, nil
	}

	// Decode in two stages so one bad record cannot take down the rest
	// of the list. Only a payload that is not a JSON array at all gets
	// discarded wholesale.
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		slog.Warn("discarding malformed transaction payload", "error", err)

		if err := s.kv.Remove(ctx, storageKey); err != nil {
			slog.Error("removing malformed transaction payload", "error", err)
		}

		return nil, nil
	}

	txs := make([]transaction.Transaction, 0, len(raws))

	for _, raw := range raws {
		var r record
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}

		tx, ok := r.toTransaction()
		if !ok {
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// Save replaces the persisted list with the given one.
func (s *Store) Save(ctx context.Context, txs []transaction.Transaction) error {
	records := make([]record, len(txs))
	for i, tx := range txs {
		records[i] = toRecord(tx)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}

	if err := s.kv.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	return nil
}

// Clear removes the persisted entry entirely.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, storageKey); err != nil {
		return fmt.Errorf("clearing transactions: %w", err)
	}

	return nil
}
