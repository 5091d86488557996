package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/domain"
	applog "portfolio/internal/log"
	"portfolio/internal/repos"
)

type TaskAPIState struct {
	Method   domain.Method `json:"method"`
	Endpoint string        `json:"endpoint"`
	Response string        `json:"response"`
	Loading  bool          `json:"loading"`
}

func InitialTaskAPI() TaskAPIState { return TaskAPIState{Method: domain.GET} }

// MockTransport stands in for the network behind the API tester. Nothing is
// sent anywhere: after Latency it hands back a canned success body.
type MockTransport struct {
	Latency time.Duration
	Now     func() time.Time
	// After schedules f once d has elapsed. Defaults to time.AfterFunc.
	After func(d time.Duration, f func())
}

func NewMockTransport(latency time.Duration) *MockTransport {
	return &MockTransport{Latency: latency}
}

type mockBody struct {
	Status int          `json:"status"`
	Data   mockBodyData `json:"data"`
}

type mockBodyData struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Do calls deliver with the response body once the latency has passed.
func (t *MockTransport) Do(method domain.Method, endpoint string, deliver func(body string)) {
	now, after := t.Now, t.After
	if now == nil {
		now = time.Now
	}
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	after(t.Latency, func() {
		b, _ := json.MarshalIndent(mockBody{
			Status: 200,
			Data: mockBodyData{
				Success:   true,
				Message:   "API test successful",
				Timestamp: now().UTC().Format("2006-01-02T15:04:05.000Z"),
			},
		}, "", "  ")
		deliver(string(b))
	})
}

// APITester runs the "Test API" form of the task API page against the mock
// transport. Runs are neither queued nor cancelled: when two overlap, each
// delivery overwrites the response and the last one to land is what shows.
type APITester struct {
	Store     repos.StateStore
	Transport *MockTransport
}

func NewAPITester(store repos.StateStore, t *MockTransport) *APITester {
	return &APITester{Store: store, Transport: t}
}

// Run marks the scope as loading and schedules the delivery. It returns the
// state as saved at submission time. The delivery keeps its own copies of
// scope and endpoint, so callers may pass strings backed by reused buffers.
func (a *APITester) Run(ctx context.Context, scope string, method domain.Method, endpoint string) (TaskAPIState, error) {
	scope, endpoint = strings.Clone(scope), strings.Clone(endpoint)
	method = domain.Method(strings.Clone(string(method)))
	var st TaskAPIState
	if err := a.Store.Load(ctx, scope, repos.PageTaskAPI, &st); err != nil {
		return st, err
	}
	st.Method = method
	st.Endpoint = endpoint
	st.Loading = true
	if err := a.Store.Save(ctx, scope, repos.PageTaskAPI, st); err != nil {
		return st, err
	}

	a.Transport.Do(method, endpoint, func(body string) {
		// The request that started the run is long gone by now.
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var cur TaskAPIState
		if err := a.Store.Load(dctx, scope, repos.PageTaskAPI, &cur); err != nil {
			applog.L().Warn("taskapi.deliver.dropped", zap.String("scope", scope), zap.Error(err))
			return
		}
		cur.Response = body
		cur.Loading = false
		if err := a.Store.Save(dctx, scope, repos.PageTaskAPI, cur); err != nil {
			applog.L().Error("taskapi.deliver.save", zap.String("scope", scope), zap.Error(err))
			return
		}
		applog.L().Info("taskapi.deliver", zap.String("scope", scope), zap.String("method", string(method)), zap.String("endpoint", endpoint))
	})
	return st, nil
}
