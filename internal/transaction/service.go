package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrNotLoaded is returned by mutations issued before the initial load
// has completed. Callers are expected to load first; queuing early
// mutations would silently reorder them around the loaded state.
var ErrNotLoaded = errors.New("transaction: store not loaded")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	Load(ctx context.Context) ([]Transaction, error)
	Save(ctx context.Context, txs []Transaction) error
	Clear(ctx context.Context) error
}

const persistTimeout = 5 * time.Second

// persistOp is one unit of work for the write queue: either a full
// snapshot to save or a request to clear the persisted list.
type persistOp struct {
	txs   []Transaction
	clear bool
}

// Service owns the in-memory transaction list. Mutations update memory
// first and then enqueue a snapshot on a single-goroutine write queue, so
// writes for the persisted list always land in mutation order and two
// quick mutations cannot overwrite each other's data on disk. A failed
// write is logged; memory is not rolled back.
type Service struct {
	repo Repository

	mu      sync.Mutex
	txs     []Transaction
	loaded  bool
	subs    map[int]chan struct{}
	nextSub int

	queue chan persistOp
	wg    sync.WaitGroup
	once  sync.Once
}

func NewService(repo Repository) *Service {
	s := &Service{
		repo:  repo,
		subs:  make(map[int]chan struct{}),
		queue: make(chan persistOp, 64),
	}

	s.wg.Add(1)
	go s.persistLoop()

	return s
}

func (s *Service) persistLoop() {
	defer s.wg.Done()

	for op := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)

		var err error
		if op.clear {
			err = s.repo.Clear(ctx)
		} else {
			err = s.repo.Save(ctx, op.txs)
		}

		cancel()

		if err != nil {
			slog.Error("persisting transactions", "error", err)
		}
	}
}

// Close stops accepting work and waits for queued writes to finish.
func (s *Service) Close() {
	s.once.Do(func() { close(s.queue) })
	s.wg.Wait()
}

// Load reads the persisted list. It must complete before any mutation;
// repository-level corruption has already been degraded to an empty or
// partial list by the repository itself.
func (s *Service) Load(ctx context.Context) error {
	txs, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	s.mu.Lock()
	s.txs = txs
	s.loaded = true
	s.notifyLocked()
	s.mu.Unlock()

	return nil
}

// Loaded reports whether the initial load has completed.
func (s *Service) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded
}

// Add creates a transaction from params with a fresh ID and the current
// timestamp. Amount positivity is the input form's responsibility.
func (s *Service) Add(params CreateParams) (Transaction, error) {
	tx := newTransaction(params, time.Now())

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return Transaction{}, ErrNotLoaded
	}

	s.txs = append(s.txs, tx)
	// Enqueued under the lock so snapshots reach the writer in mutation order.
	s.queue <- persistOp{txs: s.snapshotLocked()}
	s.notifyLocked()
	s.mu.Unlock()

	return tx, nil
}

// AddBatch appends several transactions and persists them as one snapshot.
func (s *Service) AddBatch(params []CreateParams) ([]Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	now := time.Now()

	txs := make([]Transaction, len(params))
	for i, p := range params {
		txs[i] = newTransaction(p, now)
	}

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return nil, ErrNotLoaded
	}

	s.txs = append(s.txs, txs...)
	s.queue <- persistOp{txs: s.snapshotLocked()}
	s.notifyLocked()
	s.mu.Unlock()

	return txs, nil
}

// Delete removes the transaction with the given id. A missing id is a
// no-op, not an error; the resulting list is persisted either way.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	kept := s.txs[:0]

	for _, tx := range s.txs {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}

	s.txs = kept
	s.queue <- persistOp{txs: s.snapshotLocked()}
	s.notifyLocked()
	s.mu.Unlock()

	return nil
}

// ClearAll empties the in-memory list and removes the persisted entry.
func (s *Service) ClearAll() error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	s.txs = nil
	s.queue <- persistOp{clear: true}
	s.notifyLocked()
	s.mu.Unlock()

	return nil
}

// List returns the transactions matching the filter, newest first.
// It is a pure read; nothing is mutated or persisted.
func (s *Service) List(f Filter) []Transaction {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return SortByDate(FilterTransactions(snapshot, f))
}

// Summary recomputes the derived totals from the current list.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CalculateSummary(s.txs)
}

// Breakdown returns the per-category expense shares for the current list.
func (s *Service) Breakdown() []CategoryShare {
	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return ExpensesByCategory(snapshot)
}

// Subscribe registers a change listener. The channel receives a signal
// after every state change; the returned func unregisters it.
func (s *Service) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

func newTransaction(params CreateParams, now time.Time) Transaction {
	date := params.Date
	if date.IsZero() {
		date = now
	}

	return Transaction{
		ID:          NewID(),
		Amount:      params.Amount,
		Category:    params.Category,
		Type:        params.Type,
		Date:        date,
		Description: params.Description,
	}
}

func (s *Service) snapshotLocked() []Transaction {
	snapshot := make([]Transaction, len(s.txs))
	copy(snapshot, s.txs)

	return snapshot
}

func (s *Service) notifyLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default: // listener already has a pending signal
		}
	}
}
