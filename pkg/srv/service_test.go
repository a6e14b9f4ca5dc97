package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	name  string
	start func(ctx context.Context) error
	mu    *sync.Mutex
	log   *[]string
}

func (r *recordingService) Start(ctx context.Context) error {
	return r.start(ctx)
}

func (r *recordingService) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.log = append(*r.log, r.name)
	return nil
}

func TestRun_FirstServiceToStopEndsRun(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	blocking := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	services := []Service{
		&recordingService{name: "a", start: blocking, mu: &mu, log: &log},
		&recordingService{name: "b", start: func(context.Context) error { return nil }, mu: &mu, log: &log},
		&recordingService{name: "c", start: blocking, mu: &mu, log: &log},
	}

	require.NoError(t, Run(context.Background(), services...))
	assert.Equal(t, []string{"c", "b", "a"}, log, "shutdown runs in reverse order")
}

func TestRun_ReturnsServiceError(t *testing.T) {
	boom := errors.New("session failed")
	err := Run(context.Background(), NewFunc(func(context.Context) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestRun_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cleaned := make(chan struct{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := Run(ctx,
		NewFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
		NewCleanup(func() error {
			close(cleaned)
			return nil
		}),
	)

	require.NoError(t, err)
	select {
	case <-cleaned:
	default:
		t.Fatal("cleanup did not run")
	}
}

func TestCleanup_ErrorIsLoggedNotReturned(t *testing.T) {
	err := Run(context.Background(),
		NewFunc(func(context.Context) error { return nil }),
		NewCleanup(func() error { return errors.New("close failed") }),
	)
	assert.NoError(t, err)
}
