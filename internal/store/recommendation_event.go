package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type recommendationRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *recommendationRepo) Append(ctx context.Context, ev RecommendationEvent) (RecommendationEvent, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return RecommendationEvent{}, err
	}
	ev.Sequence = seq
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	ev.Timestamp = ev.Timestamp.UTC()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO recommendations (id, sequence, created_at, student, handle, score, threshold, catalog_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Sequence, ev.Timestamp.Format(time.RFC3339Nano),
		ev.Student, ev.Handle, ev.Score, ev.Threshold, ev.CatalogVersion,
	)
	if err != nil {
		return RecommendationEvent{}, fmt.Errorf("append recommendation: %w", err)
	}
	return ev, nil
}

func (r *recommendationRepo) List(ctx context.Context, opts QueryOpts) ([]RecommendationEvent, error) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(`SELECT id, sequence, created_at, student, handle, score, threshold, catalog_version
		FROM recommendations`)
	if opts.Student != "" {
		b.WriteString(` WHERE student = ?`)
		args = append(args, opts.Student)
	}
	b.WriteString(` ORDER BY sequence DESC`)
	if opts.Limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var out []RecommendationEvent
	for rows.Next() {
		var (
			ev      RecommendationEvent
			created string
		)
		if err := rows.Scan(&ev.ID, &ev.Sequence, &created, &ev.Student, &ev.Handle,
			&ev.Score, &ev.Threshold, &ev.CatalogVersion); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		ev.Timestamp, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse recommendation time %q: %w", created, err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendations: %w", err)
	}
	return out, nil
}
