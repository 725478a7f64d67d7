package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/RichardVsc/project/internal/gateway"
)

// Fakes em memória para os testes de usecase. O fakeUow clona o estado antes
// de rodar a função e restaura em caso de erro, imitando o rollback do banco.

type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[int64]*domain.Account
	// ordem em que as contas foram travadas (GetByIDForUpdate)
	lockOrder []int64
	getErr    error
}

func newFakeAccountStore(accounts ...*domain.Account) *fakeAccountStore {
	store := &fakeAccountStore{accounts: make(map[int64]*domain.Account)}
	for _, a := range accounts {
		store.accounts[a.ID] = a
	}
	return store
}

func (s *fakeAccountStore) Create(ctx context.Context, kind domain.AccountKind, balance int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.accounts) + 1)
	account := &domain.Account{ID: id, Kind: kind, Balance: balance}
	s.accounts[id] = account
	return account, nil
}

func (s *fakeAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *fakeAccountStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.Lock()
	s.lockOrder = append(s.lockOrder, id)
	s.mu.Unlock()
	return s.GetByID(ctx, id)
}

func (s *fakeAccountStore) Debit(ctx context.Context, id int64, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if account.Balance < amount {
		return domain.ErrInsufficientFunds
	}
	account.Balance -= amount
	return nil
}

func (s *fakeAccountStore) Credit(ctx context.Context, id int64, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Balance += amount
	return nil
}

func (s *fakeAccountStore) WithTx(tx gateway.TransactionObject) gateway.AccountRepository {
	return s
}

func (s *fakeAccountStore) balance(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id].Balance
}

func (s *fakeAccountStore) snapshotAll() map[int64]domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]domain.Account, len(s.accounts))
	for id, a := range s.accounts {
		out[id] = *a
	}
	return out
}

func (s *fakeAccountStore) restoreAll(backup map[int64]domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make(map[int64]*domain.Account, len(backup))
	for id, a := range backup {
		copied := a
		s.accounts[id] = &copied
	}
}

type fakeTransferRepo struct {
	mu        sync.Mutex
	transfers []domain.Transfer
	createErr error
}

func (r *fakeTransferRepo) Create(ctx context.Context, transfer *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	transfer.ID = fmt.Sprintf("transfer-%d", len(r.transfers)+1)
	transfer.CreatedAt = time.Now()
	r.transfers = append(r.transfers, *transfer)
	return nil
}

func (r *fakeTransferRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Transfer
	for _, t := range r.transfers {
		if t.PayerID == accountID || t.RecipientID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransferRepo) WithTx(tx gateway.TransactionObject) gateway.TransferRepository {
	return r
}

func (r *fakeTransferRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.transfers)
}

// fakeUow imita a semântica tudo-ou-nada: clona o estado antes de rodar e
// restaura se a função retornar erro.
type fakeUow struct {
	store     *fakeAccountStore
	transfers *fakeTransferRepo
	beginErr  error
}

func (u *fakeUow) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if u.beginErr != nil {
		return u.beginErr
	}

	accountBackup := u.store.snapshotAll()
	u.transfers.mu.Lock()
	transferBackup := make([]domain.Transfer, len(u.transfers.transfers))
	copy(transferBackup, u.transfers.transfers)
	u.transfers.mu.Unlock()

	ctxWithTx := context.WithValue(ctx, gateway.TransactionKey, struct{}{})
	if err := fn(ctxWithTx); err != nil {
		u.store.restoreAll(accountBackup)
		u.transfers.mu.Lock()
		u.transfers.transfers = transferBackup
		u.transfers.mu.Unlock()
		return err
	}
	return nil
}

type fakeAuthorizer struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (a *fakeAuthorizer) EnsureAuthorized(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.err
}

func (a *fakeAuthorizer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

type fakePayerLock struct {
	mu       sync.Mutex
	busy     bool
	acquired []int64
	released int
}

func (l *fakePayerLock) Acquire(ctx context.Context, payerID int64) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy {
		return nil, domain.ErrTransferInProgress
	}
	l.acquired = append(l.acquired, payerID)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released++
	}, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []interface{}
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, body)
	return nil
}

func (p *fakePublisher) eventCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type fakeDispatcher struct {
	mu         sync.Mutex
	recipients []int64
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, recipientID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.recipients = append(d.recipients, recipientID)
}

func (d *fakeDispatcher) dispatchCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.recipients)
}

var errBoom = errors.New("boom")
