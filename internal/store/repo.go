package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Student string // exact student name ("" = all)
}

// RecommendationEvent records one recommendation made for a student.
type RecommendationEvent struct {
	ID             string    `json:"id"`
	Sequence       int64     `json:"sequence"`
	Timestamp      time.Time `json:"timestamp"`
	Student        string    `json:"student"`
	Handle         string    `json:"handle"`
	Score          int       `json:"score"`
	Threshold      float64   `json:"threshold"`
	CatalogVersion string    `json:"catalog_version"`
}

// RecommendationRepo is an append-only log of recommendations.
type RecommendationRepo interface {
	// Append records a recommendation. ID and Timestamp are filled in when empty;
	// Sequence is always assigned by the store.
	Append(ctx context.Context, ev RecommendationEvent) (RecommendationEvent, error)

	// List returns recorded recommendations, newest first.
	List(ctx context.Context, opts QueryOpts) ([]RecommendationEvent, error)
}
