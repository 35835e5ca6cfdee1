package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/probpick/internal/catalog"
	"github.com/abhisek/probpick/internal/problemset"
	"github.com/abhisek/probpick/internal/store"
)

// mockRecorder implements store.RecommendationRepo for testing.
type mockRecorder struct {
	events []store.RecommendationEvent
	err    error
}

func (m *mockRecorder) Append(_ context.Context, ev store.RecommendationEvent) (store.RecommendationEvent, error) {
	if m.err != nil {
		return store.RecommendationEvent{}, m.err
	}
	ev.ID = "ev-" + ev.Student
	m.events = append(m.events, ev)
	return ev, nil
}

func (m *mockRecorder) List(_ context.Context, _ store.QueryOpts) ([]store.RecommendationEvent, error) {
	return m.events, nil
}

func demoRecommender(t *testing.T, rec store.RecommendationRepo, log *slog.Logger) (*Recommender, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Demo()
	require.NoError(t, err)
	return New(Options{
		Set:            c.ProblemSet(),
		Threshold:      0.95,
		CatalogVersion: c.Version(),
		Recorder:       rec,
		Logger:         log,
	}), c
}

func TestRecommend_Demo(t *testing.T) {
	rec := &mockRecorder{}
	r, c := demoRecommender(t, rec, nil)

	recs, err := r.Recommend(context.Background(), c.Students())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, Recommendation{Student: "RazorBat", Handle: "prob4", Score: 2, Threshold: 0.95, EventID: "ev-RazorBat"}, recs[0])
	assert.Equal(t, "prob2", recs[1].Handle)
	assert.Equal(t, 2, recs[1].Score)
	assert.Equal(t, "prob3", recs[2].Handle)
	assert.Equal(t, 1, recs[2].Score)

	require.Len(t, rec.events, 3)
	assert.Equal(t, "v1.0.0", rec.events[0].CatalogVersion)
}

func TestRecommend_RecorderFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	r, c := demoRecommender(t, &mockRecorder{err: errors.New("disk full")}, log)

	recs, err := r.Recommend(context.Background(), c.Students())
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Empty(t, recs[0].EventID)
	assert.Contains(t, buf.String(), "failed to record recommendation")
	assert.Contains(t, buf.String(), "disk full")
}

func TestRecommend_EmptySet(t *testing.T) {
	c, err := catalog.Demo()
	require.NoError(t, err)

	r := New(Options{Set: problemset.New(), Threshold: 0.95})
	_, err = r.Recommend(context.Background(), c.Students())
	assert.True(t, errors.Is(err, problemset.ErrEmptyCollection))

	r = New(Options{Threshold: 0.95})
	_, err = r.Recommend(context.Background(), c.Students())
	assert.True(t, errors.Is(err, problemset.ErrEmptyCollection))
}

func TestRecommend_CanceledContext(t *testing.T) {
	r, c := demoRecommender(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	recs, err := r.Recommend(ctx, c.Students())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, recs)
}
