package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/facultyportal/internal/cache"
	"github.com/yoockh/facultyportal/internal/logger"
	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/utils"
)

func intPtr(v int) *int { return &v }

func sampleEducation(userID string) *models.Education {
	return &models.Education{
		UserID:                userID,
		TenthMedium:           "English",
		TwelfthMedium:         "English",
		TwelfthCGPAPercentage: "97",
		UGCGPAPercentage:      "92",
		PGCGPAPercentage:      "85",
		PGDegree:              "M.Sc",
		MPhilYear:             intPtr(2020),
		UGFirstAttempt:        true,
		PGFirstAttempt:        true,
	}
}

type marksFixture struct {
	edu     *fakeEducationRepo
	exp     *fakeExperienceRepo
	pubs    *fakePublicationRepo
	phd     *fakePhDRepo
	marks   *fakeMarksRepo
	history *fakeHistory
	cache   *memCache
	svc     MarksService
}

func newMarksFixture(locker cache.Locker) *marksFixture {
	f := &marksFixture{
		edu:     &fakeEducationRepo{rows: map[string]*models.Education{}},
		exp:     &fakeExperienceRepo{},
		pubs:    &fakePublicationRepo{},
		phd:     &fakePhDRepo{},
		marks:   &fakeMarksRepo{},
		history: &fakeHistory{},
		cache:   newMemCache(),
	}
	if locker == nil {
		locker = cache.NewLocalLocker(time.Second)
	}
	loader := NewScoringInputsLoader(f.edu, f.exp, f.pubs, f.phd)
	f.svc = NewMarksService(loader, f.marks, f.history, locker, f.cache, logger.Discard())
	return f
}

func (f *marksFixture) seed(userID string, experiences, publications int) {
	f.edu.rows[userID] = sampleEducation(userID)
	for i := 0; i < experiences; i++ {
		f.exp.rows = append(f.exp.rows, models.Experience{ID: string(rune('a' + i)), UserID: userID})
	}
	for i := 0; i < publications; i++ {
		f.pubs.rows = append(f.pubs.rows, models.Publication{ID: string(rune('a' + i)), UserID: userID})
	}
}

func TestMarksService_CalculateCreatesThenUpdates(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 3, 2)
	ctx := context.Background()

	first, err := f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Marks calculated successfully", first.Message)
	assert.True(t, first.Created)
	assert.Equal(t, 56.5, first.Weights.Total)

	second, err := f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Marks updated successfully", second.Message)
	assert.False(t, second.Created)
	assert.Equal(t, first.Weights, second.Weights)

	stored, err := f.marks.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 56.5, stored.TotalWeight)
	assert.EqualValues(t, 2, stored.Version)
	assert.NotEmpty(t, stored.Inputs)

	require.Len(t, f.history.rows, 2)
	assert.True(t, f.history.rows[0].Created)
	assert.False(t, f.history.rows[1].Created)
	assert.Equal(t, 3, f.history.rows[0].ExperienceCount)
}

func TestMarksService_CalculateWithoutEducationWritesNothing(t *testing.T) {
	f := newMarksFixture(nil)

	_, err := f.svc.Calculate(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "User education data not found", ae.Message)
	assert.Zero(t, f.marks.upserts)
	assert.Empty(t, f.history.rows)
}

func TestMarksService_CalculateEmptySections(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 0, 0)

	res, err := f.svc.Calculate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, res.Weights.Experience)
	assert.Zero(t, res.Weights.Publications)
	assert.Equal(t, 47.5, res.Weights.Total)
}

func TestMarksService_CalculateStageErrors(t *testing.T) {
	boom := errors.New("db down")
	cases := []struct {
		name    string
		breakIt func(f *marksFixture)
		message string
	}{
		{"education", func(f *marksFixture) { f.edu.err = boom }, "Error fetching education data"},
		{"experience", func(f *marksFixture) { f.exp.err = boom }, "Error fetching experience data"},
		{"publications", func(f *marksFixture) { f.pubs.err = boom }, "Error fetching publications data"},
		{"phd", func(f *marksFixture) { f.phd.err = boom }, "Error fetching PhD data"},
		{"exists", func(f *marksFixture) { f.marks.existsErr = boom }, "Error checking existing marks"},
		{"insert", func(f *marksFixture) { f.marks.upsertErr = boom }, "Error inserting marks"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newMarksFixture(nil)
			f.seed("u1", 1, 1)
			tc.breakIt(f)

			_, err := f.svc.Calculate(context.Background(), "u1")
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInternal))

			var ae *utils.AppError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.message, ae.Message)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestMarksService_UpdateFailureMessage(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 0, 0)
	_, err := f.svc.Calculate(context.Background(), "u1")
	require.NoError(t, err)

	f.marks.upsertErr = errors.New("deadlock")
	_, err = f.svc.Calculate(context.Background(), "u1")

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Error updating marks", ae.Message)
}

func TestMarksService_GetUsesCacheAndCalculateInvalidates(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 1, 0)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "u1")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	_, err = f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)

	m, err := f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 49.5, m.TotalWeight)
	assert.Contains(t, f.cache.entries, cache.MarksKey("u1"))

	f.exp.rows = append(f.exp.rows, models.Experience{ID: "z", UserID: "u1"})
	_, err = f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)
	assert.NotContains(t, f.cache.entries, cache.MarksKey("u1"))

	m, err = f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 51.5, m.TotalWeight)
}

func TestMarksService_GetMissDoesNotCacheRowReplacedByCalculate(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 1, 0)
	ctx := context.Background()

	_, err := f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, f.cache.Del(ctx, cache.MarksKey("u1")))
	f.exp.rows = append(f.exp.rows, models.Experience{ID: "z", UserID: "u1"})

	// Calculate starts after Get has read the old row but before it fills
	// the cache.
	done := make(chan error, 1)
	f.marks.afterGet = func() {
		f.marks.afterGet = nil
		go func() {
			_, err := f.svc.Calculate(ctx, "u1")
			done <- err
		}()
		time.Sleep(50 * time.Millisecond)
	}

	m, err := f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 49.5, m.TotalWeight)
	require.NoError(t, <-done)

	m, err = f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 51.5, m.TotalWeight)
	assert.Equal(t, int64(2), m.Version)
}

func TestMarksService_GetServesRowWhenLockUnavailable(t *testing.T) {
	f := newMarksFixture(busyLocker{err: errors.New("redis gone")})
	f.marks.rows = map[string]*models.Marks{"u1": {UserID: "u1", TotalWeight: 30, Version: 3}}

	m, err := f.svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, m.TotalWeight)
	assert.NotContains(t, f.cache.entries, cache.MarksKey("u1"))
}

func TestMarksService_SnapshotEncodeFailureIsLogged(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 0, 0)
	log, hook := logtest.NewNullLogger()
	svc := f.svc.(*marksService)
	svc.log = log
	svc.encode = func(any) ([]byte, error) { return nil, errors.New("unsupported value") }

	_, err := f.svc.Calculate(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, f.marks.rows["u1"].Inputs)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "marks inputs snapshot dropped" {
			warned = true
			assert.Equal(t, "u1", e.Data["user_id"])
			assert.EqualError(t, e.Data[logrus.ErrorKey].(error), "unsupported value")
		}
	}
	assert.True(t, warned)
}

func TestMarksService_ConcurrentCalculationsSerialise(t *testing.T) {
	f := newMarksFixture(cache.NewLocalLocker(5 * time.Second))
	f.seed("u1", 2, 2)

	const n = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.Calculate(context.Background(), "u1")
			if !assert.NoError(t, err) {
				return
			}
			if res.Created {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	m, err := f.marks.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, n, m.Version)
}

type busyLocker struct{ err error }

func (b busyLocker) Acquire(context.Context, string) (func(), error) { return nil, b.err }

func TestMarksService_LockErrors(t *testing.T) {
	f := newMarksFixture(busyLocker{err: cache.ErrLockTimeout})
	f.seed("u1", 0, 0)
	_, err := f.svc.Calculate(context.Background(), "u1")
	assert.True(t, utils.IsCode(err, utils.CodeConflict))

	f = newMarksFixture(busyLocker{err: errors.New("redis gone")})
	f.seed("u1", 0, 0)
	_, err = f.svc.Calculate(context.Background(), "u1")
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
	assert.Zero(t, f.marks.upserts)
}

func TestMarksService_HistoryAndRanking(t *testing.T) {
	f := newMarksFixture(nil)
	f.seed("u1", 1, 0)
	ctx := context.Background()

	_, err := f.svc.Calculate(ctx, "u1")
	require.NoError(t, err)

	hist, err := f.svc.History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 49.5, hist[0].Weights["totalWeight"])

	top, err := f.svc.Ranking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "u1", top[0].UserID)
}
