package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/probpick/internal/problemset"
	"github.com/abhisek/probpick/internal/store"
	"github.com/abhisek/probpick/internal/student"
)

// Options holds the dependencies for a Recommender.
type Options struct {
	Set            *problemset.Set
	Threshold      float64
	CatalogVersion string

	// Recorder is optional. When set, every recommendation is appended to it.
	Recorder store.RecommendationRepo

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Recommender picks the next problem for each student against one problem set.
type Recommender struct {
	opts Options
	log  *slog.Logger
}

// Recommendation is the problem selected for one student.
type Recommendation struct {
	Student   string  `json:"student"`
	Handle    string  `json:"handle"`
	Score     int     `json:"score"`
	Threshold float64 `json:"threshold"`
	EventID   string  `json:"event_id,omitempty"`
}

// New creates a Recommender.
func New(opts Options) *Recommender {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Recommender{opts: opts, log: log}
}

// Recommend selects the best problem for each student in order. Recording
// is best effort: a failed append is logged and the run continues.
func (r *Recommender) Recommend(ctx context.Context, students []*student.Student) ([]Recommendation, error) {
	if r.opts.Set == nil {
		return nil, fmt.Errorf("recommend: %w", problemset.ErrEmptyCollection)
	}

	recs := make([]Recommendation, 0, len(students))
	for _, st := range students {
		if err := ctx.Err(); err != nil {
			return recs, err
		}

		best, err := r.opts.Set.FindBest(st, r.opts.Threshold)
		if err != nil {
			return recs, fmt.Errorf("recommend for %s: %w", st.Name(), err)
		}
		rec := Recommendation{
			Student:   st.Name(),
			Handle:    best.Handle(),
			Score:     problemset.Score(st, best, r.opts.Threshold),
			Threshold: r.opts.Threshold,
		}
		r.log.Debug("problem selected",
			"student", rec.Student,
			"handle", rec.Handle,
			"score", rec.Score,
			"threshold", rec.Threshold)

		if r.opts.Recorder != nil {
			ev, err := r.opts.Recorder.Append(ctx, store.RecommendationEvent{
				Student:        rec.Student,
				Handle:         rec.Handle,
				Score:          rec.Score,
				Threshold:      rec.Threshold,
				CatalogVersion: r.opts.CatalogVersion,
			})
			if err != nil {
				r.log.Warn("failed to record recommendation",
					"student", rec.Student,
					"error", err)
			} else {
				rec.EventID = ev.ID
			}
		}

		recs = append(recs, rec)
	}
	return recs, nil
}
