package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazedfs/dfs"
	"github.com/katalvlaran/mazedfs/maze"
	"github.com/katalvlaran/mazedfs/service"
)

const scenarioA = "3,3\nS..\n.%.\n..G\n"

// memCache is an in-memory SolutionCache that can be told to fail.
type memCache struct {
	mu          sync.Mutex
	data        map[string]string
	getErr      error
	putErr      error
	puts        int
	putDeadline bool
}

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Put(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	_, m.putDeadline = ctx.Deadline()
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func TestSolve_Found(t *testing.T) {
	s := service.NewSolver(service.Config{MaxSteps: -1})
	rep, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.True(t, rep.Found)
	assert.Equal(t, "R,R,D,D", rep.Path.String())
	assert.Equal(t, maze.Position{}, rep.Start)
	assert.Equal(t, 4, rep.Expanded)
	assert.False(t, rep.Cached)
	assert.Contains(t, rep.Summary(), "Find: R,R,D,D\nRun time: ")
}

// TestSolve_ZeroConfig checks that an empty Config searches without limits.
func TestSolve_ZeroConfig(t *testing.T) {
	s := service.NewSolver(service.Config{})
	rep, err := s.Solve(context.Background(), "1,3\nS.G\n")
	require.NoError(t, err)
	assert.True(t, rep.Found)
	assert.Equal(t, "R,R", rep.Path.String())

	rep, err = s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.Equal(t, "R,R,D,D", rep.Path.String())
}

func TestSolve_NotFound(t *testing.T) {
	s := service.NewSolver(service.Config{MaxSteps: -1})
	rep, err := s.Solve(context.Background(), "1,3\nS%G\n")
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Equal(t, "Not found", rep.Summary())
}

func TestSolve_InputErrors(t *testing.T) {
	s := service.NewSolver(service.Config{MaxSteps: -1})
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Malformed", "2,2\nSG\n", maze.ErrFormat},
		{"NoStart", "1,2\n.G\n", maze.ErrStartNotFound},
		{"TwoStarts", "1,3\nSGS\n", maze.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := s.Solve(context.Background(), tc.input)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, service.IsInputError(err))
		})
	}
}

func TestSolve_StepLimit(t *testing.T) {
	s := service.NewSolver(service.Config{MaxSteps: 1})
	_, err := s.Solve(context.Background(), scenarioA)
	assert.ErrorIs(t, err, dfs.ErrStepLimit)
	assert.False(t, service.IsInputError(err))
}

func TestSolve_CanceledContext(t *testing.T) {
	s := service.NewSolver(service.Config{MaxSteps: -1, Timeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Solve(ctx, scenarioA)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_CacheRoundTrip(t *testing.T) {
	cache := newMemCache()
	s := service.NewSolver(service.Config{MaxSteps: -1, Cache: cache})

	first, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, "RRDD", cache.data[service.Fingerprint(first.Grid)])

	second, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Path, second.Path)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, cache.puts, "a hit must not write again")
}

// TestSolve_CacheWriteIgnoresSearchTimeout checks that the search timeout
// does not leak into the cache write.
func TestSolve_CacheWriteIgnoresSearchTimeout(t *testing.T) {
	cache := newMemCache()
	s := service.NewSolver(service.Config{Timeout: time.Minute, Cache: cache})

	_, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)
	assert.False(t, cache.putDeadline, "cache write must use the caller's context")
}

func TestSolve_CachesNotFound(t *testing.T) {
	cache := newMemCache()
	s := service.NewSolver(service.Config{MaxSteps: -1, Cache: cache})

	_, err := s.Solve(context.Background(), "1,3\nS%G\n")
	require.NoError(t, err)
	rep, err := s.Solve(context.Background(), "1,3\nS%G\n")
	require.NoError(t, err)
	assert.True(t, rep.Cached)
	assert.False(t, rep.Found)
}

func TestSolve_IgnoresBadCacheEntries(t *testing.T) {
	cache := newMemCache()
	var logged []string
	s := service.NewSolver(service.Config{
		MaxSteps: -1,
		Cache:    cache,
		Logf:     func(format string, args ...any) { logged = append(logged, fmt.Sprintf(format, args...)) },
	})
	g, err := maze.ParseString(scenarioA)
	require.NoError(t, err)
	cache.data[service.Fingerprint(g)] = "RD" // crosses the wall

	rep, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.False(t, rep.Cached)
	assert.Equal(t, "R,R,D,D", rep.Path.String())
	assert.NotEmpty(t, logged)
}

func TestSolve_CacheFailuresAreNotFatal(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("down")
	cache.putErr = errors.New("down")
	var logged int
	s := service.NewSolver(service.Config{
		MaxSteps: -1,
		Cache:    cache,
		Logf:     func(string, ...any) { logged++ },
	})

	rep, err := s.Solve(context.Background(), scenarioA)
	require.NoError(t, err)
	assert.True(t, rep.Found)
	assert.Equal(t, 2, logged)
}

func TestVerify(t *testing.T) {
	s := service.NewSolver(service.Config{})
	assert.NoError(t, s.Verify(scenarioA, "R,R,D,D"))
	assert.ErrorIs(t, s.Verify(scenarioA, "R,D"), maze.ErrPathBlocked)
	assert.ErrorIs(t, s.Verify(scenarioA, "R,Q"), maze.ErrInvalidMove)
	assert.ErrorIs(t, s.Verify("1,2\n.G\n", "R"), maze.ErrStartNotFound)
	assert.ErrorIs(t, s.Verify("x", "R"), maze.ErrFormat)
}

func TestFingerprint_Stable(t *testing.T) {
	a, err := maze.ParseString(scenarioA)
	require.NoError(t, err)
	b, err := maze.ParseString("3,3\r\nS..\r\n.%.\r\n..G\r\n")
	require.NoError(t, err)
	assert.Equal(t, service.Fingerprint(a), service.Fingerprint(b))
	assert.Len(t, service.Fingerprint(a), 64)
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.000 ns"},
		{850 * time.Nanosecond, "850.000 ns"},
		{time.Millisecond, "1000000.000 ns"},
		{1500 * time.Microsecond, "1.500 ms"},
		{time.Second, "1000.000 ms"},
		{2500 * time.Millisecond, "2.500 s"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, service.FormatElapsed(tc.d), tc.d.String())
	}
}
