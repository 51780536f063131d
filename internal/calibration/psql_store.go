package calibration

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

var _ Store = (*PsqlStore)(nil)

// PsqlStore keeps calibrations in postgres. Each update runs in a
// transaction holding an advisory lock on the key, so concurrent requests
// for the same user and exercise queue up instead of interleaving.
type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

func (s *PsqlStore) Update(ctx context.Context, key Key, fn func(tx Tx) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calibration.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key.String()))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// released on commit or rollback
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key.String()); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	return fn(&psqlTx{tx: tx, key: key})
}

func (s *PsqlStore) History(ctx context.Context, key Key) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calibration.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key.String()))

	rows, err := s.db.Query(
		ctx,
		`SELECT weight, reps, factor, score, created_at
			FROM exercise_score_history
			WHERE user_id = $1 AND exercise = $2
			ORDER BY created_at ASC, id ASC;`,
		key.UserID, key.Exercise,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Weight, &e.Reps, &e.Factor, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

type psqlTx struct {
	tx  pgx.Tx
	key Key
}

func (t *psqlTx) State(ctx context.Context) (*State, error) {
	var st State
	err := t.tx.QueryRow(
		ctx,
		`SELECT last_weight, last_reps, factor, updated_at
			FROM exercise_score_state
			WHERE user_id = $1 AND exercise = $2;`,
		t.key.UserID, t.key.Exercise,
	).Scan(&st.LastWeight, &st.LastReps, &st.Factor, &st.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (t *psqlTx) LatestFactorForWeight(ctx context.Context, weight float64) (float64, bool, error) {
	var factor float64
	err := t.tx.QueryRow(
		ctx,
		`SELECT factor
			FROM exercise_score_history
			WHERE user_id = $1 AND exercise = $2 AND weight = $3
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		t.key.UserID, t.key.Exercise, weight,
	).Scan(&factor)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return factor, true, nil
}

func (t *psqlTx) LowestWeightEntry(ctx context.Context) (*HistoryEntry, error) {
	var e HistoryEntry
	err := t.tx.QueryRow(
		ctx,
		`SELECT weight, reps, factor, score, created_at
			FROM exercise_score_history
			WHERE user_id = $1 AND exercise = $2
			ORDER BY weight ASC, created_at DESC, id DESC
			LIMIT 1;`,
		t.key.UserID, t.key.Exercise,
	).Scan(&e.Weight, &e.Reps, &e.Factor, &e.Score, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (t *psqlTx) SaveState(ctx context.Context, state State) error {
	_, err := t.tx.Exec(
		ctx,
		`INSERT INTO exercise_score_state (user_id, exercise, last_weight, last_reps, factor, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, exercise) DO UPDATE
			SET last_weight = EXCLUDED.last_weight,
				last_reps = EXCLUDED.last_reps,
				factor = EXCLUDED.factor,
				updated_at = EXCLUDED.updated_at;`,
		t.key.UserID, t.key.Exercise, state.LastWeight, state.LastReps, state.Factor, state.UpdatedAt,
	)
	if pkg.IsCheckViolationError(err) {
		return fmt.Errorf("%w: factor %v (%s)", ErrInvalidInput, state.Factor, pkg.ConstraintName(err))
	}
	return err
}

func (t *psqlTx) AppendHistory(ctx context.Context, entry HistoryEntry) (bool, error) {
	tag, err := t.tx.Exec(
		ctx,
		`INSERT INTO exercise_score_history (user_id, exercise, weight, reps, factor, score, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, exercise, weight, reps, factor) DO NOTHING;`,
		t.key.UserID, t.key.Exercise, entry.Weight, entry.Reps, entry.Factor, entry.Score, entry.CreatedAt,
	)
	if pkg.IsCheckViolationError(err) {
		return false, fmt.Errorf("%w: score %d (%s)", ErrInvalidInput, entry.Score, pkg.ConstraintName(err))
	}
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
