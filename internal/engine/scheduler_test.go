package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	etsyMocks "github.com/sellersage/listing-grader/internal/etsy/mocks"
	notifyMocks "github.com/sellersage/listing-grader/internal/notify/mocks"
	storeMocks "github.com/sellersage/listing-grader/internal/store/mocks"
)

func newTestScheduler(t *testing.T, ms *storeMocks.MockStore) *Scheduler {
	t.Helper()

	me := etsyMocks.NewMockEtsyClient(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(t, ms, me, mn)

	s, err := NewScheduler(eng, time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)
	return s
}

func TestNewScheduler_RegistersBothJobs(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	assert.Len(t, s.Entries(), 2)
}

func TestScheduler_StartRecoversStaleJobs(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, staleJobThreshold).Return(2, nil).Once()

	s.Start()
	<-s.Stop().Done()
}

func TestScheduler_StartRecoveryErrorIsNonFatal(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().RecoverStaleJobRuns(mock.Anything, staleJobThreshold).
		Return(0, errors.New("db error")).Once()

	s.Start()
	<-s.Stop().Done()
}

func TestRunJob_SuccessRecordsCompletion(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().InsertJobRun(mock.Anything, "test_job").Return("run-1", nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 7).Return(nil).Once()

	s.runJob("test_job", func(ctx context.Context) (int, error) {
		return 7, nil
	})
}

func TestRunJob_FailureRecordsError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().InsertJobRun(mock.Anything, "test_job").Return("run-2", nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-2", "failed", "boom", 0).Return(nil).Once()

	s.runJob("test_job", func(ctx context.Context) (int, error) {
		return 0, errors.New("boom")
	})
}

func TestRunJob_InsertFailureStillRunsJob(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().InsertJobRun(mock.Anything, "test_job").
		Return("", errors.New("db error")).Once()

	ran := false
	s.runJob("test_job", func(ctx context.Context) (int, error) {
		ran = true
		return 0, nil
	})

	assert.True(t, ran, "job must run even when bookkeeping fails")
}

func TestRunTrackedRefresh_EmptyCycle(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().InsertJobRun(mock.Anything, "tracked_refresh").Return("run-3", nil).Once()
	ms.EXPECT().ListTracked(mock.Anything, true).Return(nil, nil).Once()
	ms.EXPECT().ListPendingAlerts(mock.Anything).Return(nil, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-3", "succeeded", "", 0).Return(nil).Once()

	s.runTrackedRefresh()
}

func TestRunRescore_EmptyStore(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	s := newTestScheduler(t, ms)

	ms.EXPECT().InsertJobRun(mock.Anything, "rescore").Return("run-4", nil).Once()
	ms.EXPECT().ListListings(mock.Anything, mock.Anything).Return(nil, 0, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-4", "succeeded", "", 0).Return(nil).Once()

	s.runRescore()
}
