package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/RichardVsc/project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusUpdate struct {
	status domain.NotificationStatus
	count  int
}

type fakeAttemptRepo struct {
	mu        sync.Mutex
	attempts  []*domain.NotificationAttempt
	updates   []statusUpdate
	createErr error
}

func (r *fakeAttemptRepo) Create(ctx context.Context, attempt *domain.NotificationAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *fakeAttemptRepo) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, statusUpdate{status: status, count: count})
	return nil
}

// fakeSender falha as primeiras failUntil chamadas e entrega depois.
type fakeSender struct {
	mu        sync.Mutex
	calls     int
	failUntil int
}

func (s *fakeSender) Send(ctx context.Context, recipientID int64, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failUntil {
		return errBoom
	}
	return nil
}

func (s *fakeSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSendNotification_DeliversOnFirstAttempt(t *testing.T) {
	repo := &fakeAttemptRepo{}
	sender := &fakeSender{}
	uc := NewSendNotification(repo, sender).WithRetryPolicy(3, time.Millisecond)

	uc.Execute(context.Background(), 42, domain.TransferReceivedMessage)

	require.Len(t, repo.attempts, 1)
	assert.Equal(t, int64(42), repo.attempts[0].RecipientID)
	assert.Equal(t, domain.TransferReceivedMessage, repo.attempts[0].Message)
	assert.Equal(t, 1, sender.callCount())

	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.NotificationSent, repo.updates[0].status)
	assert.Equal(t, 1, repo.updates[0].count)
}

func TestSendNotification_RetriesThenSucceeds(t *testing.T) {
	repo := &fakeAttemptRepo{}
	sender := &fakeSender{failUntil: 2}
	uc := NewSendNotification(repo, sender).WithRetryPolicy(3, time.Millisecond)

	uc.Execute(context.Background(), 42, domain.TransferReceivedMessage)

	assert.Equal(t, 3, sender.callCount())

	// Failed, Failed, Sent — cada tentativa registra o status observado
	require.Len(t, repo.updates, 3)
	assert.Equal(t, domain.NotificationFailed, repo.updates[0].status)
	assert.Equal(t, domain.NotificationFailed, repo.updates[1].status)
	assert.Equal(t, domain.NotificationSent, repo.updates[2].status)
	assert.Equal(t, 3, repo.updates[2].count)
}

func TestSendNotification_AbandonsAfterMaxAttempts(t *testing.T) {
	repo := &fakeAttemptRepo{}
	sender := &fakeSender{failUntil: 10}
	uc := NewSendNotification(repo, sender).WithRetryPolicy(3, time.Millisecond)

	uc.Execute(context.Background(), 42, domain.TransferReceivedMessage)

	// Exatamente o teto de tentativas, nem uma a mais
	assert.Equal(t, 3, sender.callCount())
	require.Len(t, repo.updates, 3)
	for _, update := range repo.updates {
		assert.Equal(t, domain.NotificationFailed, update.status)
	}
}

func TestSendNotification_CreateFailureSkipsDelivery(t *testing.T) {
	repo := &fakeAttemptRepo{createErr: errBoom}
	sender := &fakeSender{}
	uc := NewSendNotification(repo, sender).WithRetryPolicy(3, time.Millisecond)

	uc.Execute(context.Background(), 42, domain.TransferReceivedMessage)

	// Sem registro de tentativa não há entrega
	assert.Equal(t, 0, sender.callCount())
	assert.Empty(t, repo.updates)
}

func TestSendNotification_StopsOnContextCancel(t *testing.T) {
	repo := &fakeAttemptRepo{}
	sender := &fakeSender{failUntil: 10}
	uc := NewSendNotification(repo, sender).WithRetryPolicy(3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		uc.Execute(ctx, 42, domain.TransferReceivedMessage)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Execute não respeitou o cancelamento do contexto")
	}

	// A primeira tentativa acontece; o backoff é interrompido pelo contexto
	assert.Equal(t, 1, sender.callCount())
}
