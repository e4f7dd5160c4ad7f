package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	colID            = "id"
	colSequence      = "sequence"
	colTimestamp     = "timestamp"
	colSeed          = "seed"
	colEngineVersion = "engine_version"
	colPreviewID     = "preview_id"
	colLevel         = "level"
	colTitle         = "title"
	colQuestionCount = "question_count"
	colConfig        = "config"
)

var previewColumns = []string{
	colID, colSequence, colTimestamp, colSeed, colEngineVersion,
	colPreviewID, colLevel, colTitle, colQuestionCount, colConfig,
}

type previewRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *previewRepo) Append(ctx context.Context, rec *PreviewRecord) error {
	if rec.PreviewID == "" {
		return errors.New("append preview: empty preview id")
	}
	config := rec.Config
	if len(config) == 0 {
		config = []byte("{}")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ts = ts.UTC()

	query, args := builder().
		Insert(previewTable).
		Columns(colSequence, colTimestamp, colPreviewID, colLevel, colTitle,
			colSeed, colEngineVersion, colQuestionCount, colConfig).
		Values(seqNum, ts, rec.PreviewID, rec.Level, rec.Title,
			rec.Seed, rec.EngineVersion, rec.QuestionCount, string(config)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save preview event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save preview event: %w", err)
	}

	rec.ID = int(id)
	rec.Sequence = seqNum
	rec.Timestamp = ts
	rec.Config = config
	return nil
}

func (r *previewRepo) Get(ctx context.Context, previewID string) (*PreviewRecord, error) {
	return r.first(ctx, r.selectAll().Where(entsql.EQ(colPreviewID, previewID)))
}

func (r *previewRepo) Latest(ctx context.Context) (*PreviewRecord, error) {
	return r.first(ctx, r.selectAll().OrderBy(entsql.Desc(colSequence)))
}

func (r *previewRepo) List(ctx context.Context, opts QueryOpts) ([]PreviewRecord, error) {
	sel := r.selectAll().OrderBy(entsql.Desc(colSequence))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(colTimestamp, opts.To.UTC()))
	}
	if opts.Level != "" {
		preds = append(preds, entsql.EQ(colLevel, opts.Level))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list previews: %w", err)
	}
	defer rows.Close()

	var out []PreviewRecord
	for rows.Next() {
		rec, err := scanPreview(rows)
		if err != nil {
			return nil, fmt.Errorf("list previews: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list previews: %w", err)
	}
	return out, nil
}

func (r *previewRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("prune previews: keep must be >= 0, got %d", keep)
	}

	del := builder().Delete(previewTable)
	if keep > 0 {
		// The keep-th newest sequence is the oldest one that survives.
		query, args := builder().
			Select(colSequence).
			From(builder().Table(previewTable)).
			OrderBy(entsql.Desc(colSequence)).
			Limit(1).
			Offset(keep - 1).
			Query()
		var threshold int64
		err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		if err != nil {
			return 0, fmt.Errorf("prune previews: %w", err)
		}
		del.Where(entsql.LT(colSequence, threshold))
	}

	query, args := del.Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("prune previews: %w", err)
	}
	return res.RowsAffected()
}

func (r *previewRepo) selectAll() *entsql.Selector {
	b := builder()
	return b.Select(previewColumns...).From(b.Table(previewTable))
}

func (r *previewRepo) first(ctx context.Context, sel *entsql.Selector) (*PreviewRecord, error) {
	query, args := sel.Limit(1).Query()
	rec, err := scanPreview(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPreviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query preview: %w", err)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreview(s scanner) (*PreviewRecord, error) {
	var (
		rec    PreviewRecord
		config []byte
	)
	err := s.Scan(&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.Seed, &rec.EngineVersion,
		&rec.PreviewID, &rec.Level, &rec.Title, &rec.QuestionCount, &config)
	if err != nil {
		return nil, err
	}
	rec.Timestamp = rec.Timestamp.UTC()
	rec.Config = config
	return &rec, nil
}
