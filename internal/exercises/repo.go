package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Names(ctx context.Context, userID uuid.UUID) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.names")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT name FROM exercise WHERE user_id = $1 ORDER BY name;`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *Repo) Add(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", e.Name))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise (user_id, name, created_at) VALUES ($1, $2, $3);`,
		e.UserID, e.Name, e.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseExists
		}
		return err
	}
	return nil
}

// Get returns the catalog entry with a summary of every log of it, newest first.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, name string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))

	e := Exercise{UserID: userID}
	if err := r.db.QueryRow(
		ctx,
		`SELECT name, created_at FROM exercise WHERE user_id = $1 AND name = $2;`,
		userID, name,
	).Scan(&e.Name, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT el.id, el.training_id, to_char(t.date, 'YYYY-MM-DD'), el.score, el.avg_weight, el.avg_reps, el.created_at
			FROM exercise_log el
			JOIN training_log t ON t.id = el.training_id
			WHERE el.user_id = $1 AND el.name = $2
			ORDER BY t.date DESC, el.created_at DESC;`,
		userID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer rows.Close()

	e.Logs = []LogSummary{}
	for rows.Next() {
		var l LogSummary
		if err := rows.Scan(&l.ID, &l.TrainingID, &l.Date, &l.Score, &l.AvgWeight, &l.AvgReps, &l.CreatedAt); err != nil {
			return nil, err
		}
		e.Logs = append(e.Logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &e, nil
}

// Rename changes the catalog name. Logs and calibration data follow through
// the ON UPDATE CASCADE foreign keys.
func (r *Repo) Rename(ctx context.Context, userID uuid.UUID, name, newName string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.rename")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))
	span.SetAttributes(attribute.String("exercise.new", newName))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET name = $1 WHERE user_id = $2 AND name = $3;`,
		newName, userID, name,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE user_id = $1 AND name = $2;`, userID, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// Sessions returns every log of the exercise with its sets in set order.
func (r *Repo) Sessions(ctx context.Context, userID uuid.UUID, name string) (_ []scoring.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", name))

	rows, err := r.db.Query(
		ctx,
		`SELECT el.id, el.name, el.created_at, s.type, s.reps, s.weight, s.rep_unit
			FROM exercise_log el
			LEFT JOIN set_log s ON s.exercise_log_id = el.id
			WHERE el.user_id = $1 AND el.name = $2
			ORDER BY el.created_at, el.id, s.ord, s.created_at;`,
		userID, name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []scoring.Session
	for rows.Next() {
		var (
			s       scoring.Session
			setType *string
			reps    *int
			weight  *float64
			repUnit *string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &setType, &reps, &weight, &repUnit); err != nil {
			return nil, err
		}

		if n := len(sessions); n == 0 || sessions[n-1].ID != s.ID {
			s.Sets = []scoring.Set{}
			sessions = append(sessions, s)
		}
		// a log without sets comes back as a single row of NULLs
		if setType == nil {
			continue
		}
		last := &sessions[len(sessions)-1]
		last.Sets = append(last.Sets, scoring.Set{
			Type:    scoring.SetType(*setType),
			Reps:    *reps,
			Weight:  *weight,
			RepUnit: scoring.RepUnit(*repUnit),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *Repo) LogStats(ctx context.Context, exerciseLogID uuid.UUID) (_ *LogStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.log-stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", exerciseLogID.String()))

	var stats LogStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, avg_weight, avg_reps FROM exercise_log WHERE id = $1;`,
		exerciseLogID,
	).Scan(&stats.ID, &stats.UserID, &stats.Name, &stats.AvgWeight, &stats.AvgReps); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseLogNotFound
		}
		return nil, err
	}
	return &stats, nil
}
