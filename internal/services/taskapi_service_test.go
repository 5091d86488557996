package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain"
	"portfolio/internal/repos"
	"portfolio/internal/services"
)

// manualClock hands out increasing timestamps and holds scheduled callbacks
// until the test fires them.
type manualClock struct {
	mu      sync.Mutex
	t       time.Time
	pending []func()
}

func (m *manualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Add(time.Second)
	return m.t
}

func (m *manualClock) After(_ time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, f)
}

func newTester(t *testing.T) (*services.APITester, *manualClock, repos.StateStore) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := repos.NewStateRepo(db, time.Hour)

	clock := &manualClock{t: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	tr := &services.MockTransport{Latency: 1500 * time.Millisecond, Now: clock.Now, After: clock.After}
	return services.NewAPITester(store, tr), clock, store
}

type delivered struct {
	Status int `json:"status"`
	Data   struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	} `json:"data"`
}

func TestAPITesterDeliversAfterLatency(t *testing.T) {
	tester, clock, store := newTester(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s", repos.PageTaskAPI, services.InitialTaskAPI()))

	st, err := tester.Run(ctx, "s", domain.POST, "/api/tasks")
	require.NoError(t, err)
	assert.True(t, st.Loading)
	assert.Empty(t, st.Response)
	require.Len(t, clock.pending, 1)

	clock.pending[0]()

	var got services.TaskAPIState
	require.NoError(t, store.Load(ctx, "s", repos.PageTaskAPI, &got))
	assert.False(t, got.Loading)
	assert.Equal(t, domain.POST, got.Method)
	assert.Contains(t, got.Response, "\n  \"status\": 200")

	var body delivered
	require.NoError(t, json.Unmarshal([]byte(got.Response), &body))
	assert.Equal(t, 200, body.Status)
	assert.True(t, body.Data.Success)
	assert.Equal(t, "API test successful", body.Data.Message)
	assert.Equal(t, "2025-01-02T03:04:06.000Z", body.Data.Timestamp)
}

func TestAPITesterOverlappingRunsLastDeliveryWins(t *testing.T) {
	tester, clock, store := newTester(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "s", repos.PageTaskAPI, services.InitialTaskAPI()))

	_, err := tester.Run(ctx, "s", domain.GET, "/api/tasks")
	require.NoError(t, err)
	_, err = tester.Run(ctx, "s", domain.GET, "/api/tasks/1")
	require.NoError(t, err)
	require.Len(t, clock.pending, 2)

	// second run lands first, then the first one overwrites it
	clock.pending[1]()
	clock.pending[0]()

	var got services.TaskAPIState
	require.NoError(t, store.Load(ctx, "s", repos.PageTaskAPI, &got))
	var body delivered
	require.NoError(t, json.Unmarshal([]byte(got.Response), &body))
	assert.Equal(t, "2025-01-02T03:04:07.000Z", body.Data.Timestamp)
	assert.Equal(t, "/api/tasks/1", got.Endpoint)
}

func TestAPITesterDeliveryOwnsItsScope(t *testing.T) {
	tester, clock, store := newTester(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "scope-a", repos.PageTaskAPI, services.InitialTaskAPI()))
	require.NoError(t, store.Save(ctx, "scope-b", repos.PageTaskAPI, services.InitialTaskAPI()))

	// strings backed by a buffer the caller reuses, as fiber does
	scopeBuf := []byte("scope-a")
	_, err := tester.Run(ctx, utils.UnsafeString(scopeBuf), domain.GET, "/api/tasks")
	require.NoError(t, err)
	copy(scopeBuf, "scope-b")
	require.Len(t, clock.pending, 1)
	clock.pending[0]()

	var a, b services.TaskAPIState
	require.NoError(t, store.Load(ctx, "scope-a", repos.PageTaskAPI, &a))
	require.NoError(t, store.Load(ctx, "scope-b", repos.PageTaskAPI, &b))
	assert.Contains(t, a.Response, "API test successful")
	assert.False(t, a.Loading)
	assert.Empty(t, b.Response)
}

func TestAPITesterUnknownScope(t *testing.T) {
	tester, clock, _ := newTester(t)
	_, err := tester.Run(context.Background(), "missing", domain.GET, "/")
	assert.ErrorIs(t, err, repos.ErrScopeNotFound)
	assert.Empty(t, clock.pending)
}

func TestMockTransportDefaultTimer(t *testing.T) {
	tr := services.NewMockTransport(5 * time.Millisecond)
	got := make(chan string, 1)
	tr.Do(domain.GET, "/api/tasks", func(body string) { got <- body })
	select {
	case b := <-got:
		assert.Contains(t, b, "API test successful")
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}
}
