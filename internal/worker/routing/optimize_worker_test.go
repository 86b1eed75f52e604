package routing_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/domain"
	workerrouting "github.com/route-optimizer/internal/worker/routing"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockJobRunner struct {
	mock.Mock
}

func (m *MockJobRunner) RunJob(ctx context.Context, method string, start time.Time) (*domain.OptimizationResult, *domain.Comparison, *domain.RouteMetrics, error) {
	args := m.Called(ctx, method, start)
	var (
		res *domain.OptimizationResult
		cmp *domain.Comparison
		met *domain.RouteMetrics
	)
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.OptimizationResult)
	}
	if args.Get(1) != nil {
		cmp = args.Get(1).(*domain.Comparison)
	}
	if args.Get(2) != nil {
		met = args.Get(2).(*domain.RouteMetrics)
	}
	return res, cmp, met, args.Error(3)
}

func encodeEvent(t *testing.T, event domain.RouteOptimizeEvent) string {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return string(data)
}

func TestOptimizeWorker_Name(t *testing.T) {
	w := workerrouting.NewOptimizeWorker(&MockStreamRepository{}, &MockJobRunner{}, "test-group", zap.NewNop())
	assert.Equal(t, "route-optimize", w.Name())
}

func TestOptimizeWorker_Stop(t *testing.T) {
	w := workerrouting.NewOptimizeWorker(&MockStreamRepository{}, &MockJobRunner{}, "test-group", zap.NewNop())

	assert.False(t, w.IsStopped())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	// Stopping twice is a no-op.
	assert.NoError(t, w.Stop())
}

func TestOptimizeWorker_ProcessesJob(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRunner := &MockJobRunner{}
	logger := zap.NewNop()

	jobID := uuid.New()
	event := domain.RouteOptimizeEvent{JobID: jobID, Method: domain.MethodNearestNeighbor2Opt}

	result := &domain.OptimizationResult{
		Method:     domain.MethodNearestNeighbor2Opt,
		Tour:       domain.Tour{0, 1, 2, 0},
		DistanceKm: 12.5,
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteOptimize, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{{ID: "1-0", Data: encodeEvent(t, event)}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return(nil, nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamRouteOptimize, "test-group", []string{"1-0"}).
		Return(nil)

	mockRunner.On("RunJob", mock.Anything, domain.MethodNearestNeighbor2Opt, time.Time{}).
		Return(result, &domain.Comparison{}, &domain.RouteMetrics{}, nil)

	published := make(chan domain.RouteDoneEvent, 1)
	mockStream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.AnythingOfType("domain.RouteDoneEvent")).
		Run(func(args mock.Arguments) {
			published <- args.Get(2).(domain.RouteDoneEvent)
		}).
		Return(nil)

	w := workerrouting.NewOptimizeWorker(mockStream, mockRunner, "test-group", logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	select {
	case ev := <-published:
		assert.Equal(t, jobID, ev.JobID)
		assert.Empty(t, ev.Error)
		require.NotNil(t, ev.Result)
		assert.Equal(t, 12.5, ev.Result.DistanceKm)
		assert.NotNil(t, ev.Comparison)
		assert.NotNil(t, ev.Metrics)
	case <-time.After(2 * time.Second):
		t.Fatal("worker never published a done event")
	}

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	mockRunner.AssertExpectations(t)
}

func TestOptimizeWorker_FailedJobPublishesError(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRunner := &MockJobRunner{}

	jobID := uuid.New()
	event := domain.RouteOptimizeEvent{JobID: jobID, Method: domain.MethodNaive}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteOptimize, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{{ID: "2-0", Data: encodeEvent(t, event)}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return(nil, nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamRouteOptimize, "test-group", []string{"2-0"}).
		Return(nil)

	mockRunner.On("RunJob", mock.Anything, domain.MethodNaive, time.Time{}).
		Return(nil, nil, nil, assert.AnError)

	published := make(chan domain.RouteDoneEvent, 1)
	mockStream.On("PublishToStream", mock.Anything, domain.StreamRouteDone, mock.AnythingOfType("domain.RouteDoneEvent")).
		Run(func(args mock.Arguments) {
			published <- args.Get(2).(domain.RouteDoneEvent)
		}).
		Return(nil)

	w := workerrouting.NewOptimizeWorker(mockStream, mockRunner, "test-group", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	select {
	case ev := <-published:
		assert.Equal(t, jobID, ev.JobID)
		assert.NotEmpty(t, ev.Error)
		assert.Nil(t, ev.Result)
	case <-time.After(2 * time.Second):
		t.Fatal("worker never published a done event")
	}

	require.NoError(t, w.Stop())
	<-done
}

func TestOptimizeWorker_MalformedMessageIsAcked(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRunner := &MockJobRunner{}

	acked := make(chan string, 1)

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteOptimize, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{{ID: "3-0", Data: "{not json"}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamRouteOptimize, "test-group", mock.AnythingOfType("string"), 10).
		Return(nil, nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamRouteOptimize, "test-group", "3-0").
		Run(func(args mock.Arguments) { acked <- args.Get(3).(string) }).
		Return(nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamRouteOptimize, "test-group", []string{}).
		Return(nil)

	w := workerrouting.NewOptimizeWorker(mockStream, mockRunner, "test-group", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	select {
	case id := <-acked:
		assert.Equal(t, "3-0", id)
	case <-time.After(2 * time.Second):
		t.Fatal("malformed message was never acknowledged")
	}

	require.NoError(t, w.Stop())
	<-done

	mockRunner.AssertNotCalled(t, "RunJob", mock.Anything, mock.Anything, mock.Anything)
}
