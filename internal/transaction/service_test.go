package transaction_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"centavo/internal/transaction"
)

func loadedService(t *testing.T, repo *transaction.MockRepository, initial []transaction.Transaction) *transaction.Service {
	t.Helper()

	repo.EXPECT().Load(gomock.Any()).Return(initial, nil)

	svc := transaction.NewService(repo)
	require.NoError(t, svc.Load(context.Background()))

	return svc
}

func TestService_MutationsBeforeLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	svc := transaction.NewService(repo)
	defer svc.Close()

	_, err := svc.Add(transaction.CreateParams{Amount: 100, Type: transaction.TypeExpense})
	assert.ErrorIs(t, err, transaction.ErrNotLoaded)

	assert.ErrorIs(t, svc.Delete("x"), transaction.ErrNotLoaded)
	assert.ErrorIs(t, svc.ClearAll(), transaction.ErrNotLoaded)
	assert.False(t, svc.Loaded())
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, nil)

	var saved []transaction.Transaction

	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []transaction.Transaction) error {
			saved = txs
			return nil
		})

	got, err := svc.Add(transaction.CreateParams{
		Amount:      1234,
		Category:    transaction.CategoryFood,
		Type:        transaction.TypeExpense,
		Description: "Coffee",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.WithinDuration(t, time.Now(), got.Date, time.Second)

	svc.Close() // drain the write queue before asserting

	require.Len(t, saved, 1)
	assert.Equal(t, got, saved[0])
}

func TestService_WritesArriveInMutationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, nil)

	var savedLens []int

	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []transaction.Transaction) error {
			savedLens = append(savedLens, len(txs))
			return nil
		}).
		Times(3)

	for i := 0; i < 3; i++ {
		_, err := svc.Add(transaction.CreateParams{Amount: 100, Type: transaction.TypeExpense})
		require.NoError(t, err)
	}

	svc.Close()

	// Each snapshot contains everything the previous one did: no
	// lost-update between back-to-back mutations.
	assert.Equal(t, []int{1, 2, 3}, savedLens)
}

func TestService_Delete(t *testing.T) {
	initial := []transaction.Transaction{
		{ID: "keep", Amount: 100, Type: transaction.TypeIncome, Date: time.Now()},
		{ID: "drop", Amount: 200, Type: transaction.TypeExpense, Date: time.Now()},
	}

	type testCase struct {
		name     string
		deleteID string
		wantIDs  []string
	}

	tests := []testCase{
		{name: "ExistingID", deleteID: "drop", wantIDs: []string{"keep"}},
		{name: "MissingIDIsNoOp", deleteID: "ghost", wantIDs: []string{"keep", "drop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := transaction.NewMockRepository(ctrl)
			svc := loadedService(t, repo, initial)

			var saved []transaction.Transaction

			repo.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, txs []transaction.Transaction) error {
					saved = txs
					return nil
				})

			require.NoError(t, svc.Delete(tt.deleteID))
			svc.Close()

			ids := make([]string, 0, len(saved))
			for _, tx := range saved {
				ids = append(ids, tx.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, []transaction.Transaction{
		{ID: "a", Amount: 100, Type: transaction.TypeIncome, Date: time.Now()},
	})

	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	require.NoError(t, svc.ClearAll())
	svc.Close()

	assert.Empty(t, svc.List(transaction.Filter{}))
	assert.Equal(t, transaction.Summary{}, svc.Summary())
}

func TestService_SaveFailureKeepsMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, nil)

	repo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	got, err := svc.Add(transaction.CreateParams{Amount: 500, Type: transaction.TypeExpense})
	require.NoError(t, err)

	svc.Close()

	// In-memory state stays ahead of disk until the next successful write.
	list := svc.List(transaction.Filter{})
	require.Len(t, list, 1)
	assert.Equal(t, got.ID, list[0].ID)
}

func TestService_ListSortsAndFilters(t *testing.T) {
	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, []transaction.Transaction{
		{ID: "old", Amount: 100, Type: transaction.TypeExpense, Date: base},
		{ID: "new", Amount: 200, Type: transaction.TypeExpense, Date: base.AddDate(0, 0, 1)},
		{ID: "income", Amount: 300, Type: transaction.TypeIncome, Date: base.AddDate(0, 0, 2)},
	})
	defer svc.Close()

	expense := transaction.TypeExpense
	list := svc.List(transaction.Filter{Type: &expense})

	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestService_SubscribeNotifiesOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, nil)

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ch, cancel := svc.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)

	notified := make(chan struct{})

	go func() {
		defer wg.Done()
		<-ch
		close(notified)
	}()

	_, err := svc.Add(transaction.CreateParams{Amount: 100, Type: transaction.TypeIncome})
	require.NoError(t, err)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("subscriber was not notified")
	}

	wg.Wait()
	svc.Close()
}

func TestService_SubscribeCancelClosesChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)
	svc := loadedService(t, repo, nil)
	defer svc.Close()

	ch, cancel := svc.Subscribe()

	cancel()
	cancel() // safe to call twice

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel was not closed on cancel")
	}
}
