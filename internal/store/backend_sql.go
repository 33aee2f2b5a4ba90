// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-joycribe/internal/utils"
	"github.com/MKhiriev/go-joycribe/migrations"
)

const (
	snapshotsTable = "history_snapshots"

	// DefaultSnapshotKey names the history row when none is configured.
	DefaultSnapshotKey = "history"

	// maxTxAttempts bounds retries of a snapshot transaction that failed
	// with a retryable driver error.
	maxTxAttempts = 3
)

// sqlBackend stores the serialized history as one row of history_snapshots.
// Save reads the row under a write lock, compares its revision and upserts
// the new payload inside one transaction.
type sqlBackend struct {
	db       *DB
	key      string
	builder  sq.StatementBuilderType
	lockRows bool
}

// NewSQLBackend returns a backend over db storing the snapshot under key.
// An empty key falls back to [DefaultSnapshotKey].
func NewSQLBackend(db *DB, key string) Backend {
	if key == "" {
		key = DefaultSnapshotKey
	}

	b := &sqlBackend{db: db, key: key, builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
	if db.dialect == migrations.DialectPostgres {
		b.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		b.lockRows = true
	}

	return b
}

func (b *sqlBackend) Load(ctx context.Context) (Snapshot, error) {
	query, args, err := b.selectPayload(false).ToSql()
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	payload, err := scanPayload(b.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		b.db.logger.Err(err).Str("func", "sqlBackend.Load").Str("key", b.key).Msg("error selecting history snapshot")
		return Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return Snapshot{Payload: payload, Revision: utils.Revision(payload)}, nil
}

func (b *sqlBackend) Save(ctx context.Context, payload []byte, expectedRevision string) (string, error) {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = b.save(ctx, payload, expectedRevision)
		if err == nil {
			return utils.Revision(payload), nil
		}
		if errors.Is(err, ErrRevisionConflict) || b.db.errorClassificator.Classify(err) != Retryable {
			return "", err
		}
		b.db.logger.Warn().Err(err).Str("func", "sqlBackend.Save").Int("attempt", attempt).Msg("retrying snapshot transaction")
	}

	return "", err
}

func (b *sqlBackend) save(ctx context.Context, payload []byte, expectedRevision string) error {
	selectQuery, selectArgs, err := b.selectPayload(b.lockRows).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	upsertQuery, upsertArgs, err := b.builder.
		Insert(snapshotsTable).
		Columns("storage_key", "payload", "updated_at").
		Values(b.key, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		b.db.logger.Err(err).Str("func", "sqlBackend.save").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := scanPayload(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		b.db.logger.Err(err).Str("func", "sqlBackend.save").Str("key", b.key).Msg("error selecting history snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if utils.Revision(current) != expectedRevision {
		return ErrRevisionConflict
	}

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		b.db.logger.Err(err).Str("func", "sqlBackend.save").Str("key", b.key).Msg("error upserting history snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		b.db.logger.Err(err).Str("func", "sqlBackend.save").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (b *sqlBackend) Close() error {
	return b.db.Close()
}

func (b *sqlBackend) selectPayload(forUpdate bool) sq.SelectBuilder {
	q := b.builder.
		Select("payload").
		From(snapshotsTable).
		Where(sq.Eq{"storage_key": b.key})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

// scanPayload returns nil when the snapshot row does not exist yet.
func scanPayload(row *sql.Row) ([]byte, error) {
	var payload string
	err := row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}
