package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/scoring"
	"github.com/2beens/healthapi/internal/telemetry/tracing"
	"github.com/2beens/healthapi/pkg"
)

const (
	trainingColumns = `
	id, user_id, to_char(date, 'YYYY-MM-DD'), type, notes,
	avg_heart_rate, duration, pauses, pause_length, calories_burned, created_at`
	exerciseLogColumns = `
	id, user_id, training_id, name, notes, ord, score, avg_weight, avg_reps, created_at`
	setColumns = `
	id, user_id, exercise_log_id, type, reps, weight, rep_unit, ord, created_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddTraining(ctx context.Context, t Training) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO training_log
			(id, user_id, date, type, notes, avg_heart_rate, duration, pauses, pause_length, calories_burned, created_at)
			VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11);`,
		t.ID, t.UserID, t.Date, t.Type, t.Notes,
		t.AvgHeartRate, t.Duration, t.Pauses, t.PauseLength, t.CaloriesBurned, t.CreatedAt,
	); err != nil {
		return nil, err
	}

	if t.Exercises == nil {
		t.Exercises = []ExerciseLog{}
	}

	span.SetAttributes(attribute.String("training.id", t.ID.String()))
	return &t, nil
}

// GetTraining returns the training with its exercise logs and their sets.
func (r *Repo) GetTraining(ctx context.Context, userID, id uuid.UUID) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", id.String()))

	t, err := scanTraining(r.db.QueryRow(
		ctx,
		`SELECT `+trainingColumns+` FROM training_log WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
	if err != nil {
		return nil, err
	}

	trainings := []Training{*t}
	if err := r.loadExercises(ctx, trainings); err != nil {
		return nil, err
	}
	return &trainings[0], nil
}

// ListTrainings returns the user's trainings, newest first. A non-empty date
// limits the result to that day.
func (r *Repo) ListTrainings(ctx context.Context, userID uuid.UUID, date string) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rows pgx.Rows
	if date == "" {
		rows, err = r.db.Query(
			ctx,
			`SELECT `+trainingColumns+` FROM training_log
				WHERE user_id = $1
				ORDER BY date DESC, created_at DESC;`,
			userID,
		)
	} else {
		span.SetAttributes(attribute.String("date", date))
		rows, err = r.db.Query(
			ctx,
			`SELECT `+trainingColumns+` FROM training_log
				WHERE user_id = $1 AND date = $2::date
				ORDER BY created_at DESC;`,
			userID, date,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadExercises(ctx, trainings); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("trainings.count", len(trainings)))
	return trainings, nil
}

func (r *Repo) UpdateTraining(ctx context.Context, t *Training) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", t.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_log
			SET type = $1, notes = $2, avg_heart_rate = $3, duration = $4,
				pauses = $5, pause_length = $6, calories_burned = $7
			WHERE id = $8 AND user_id = $9;`,
		t.Type, t.Notes, t.AvgHeartRate, t.Duration,
		t.Pauses, t.PauseLength, t.CaloriesBurned,
		t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

// DeleteTraining removes the training; its exercise logs and sets cascade.
func (r *Repo) DeleteTraining(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM training_log WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

func (r *Repo) TrainingTypes(ctx context.Context, userID uuid.UUID) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.types")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT type FROM training_log WHERE user_id = $1 ORDER BY type;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// CaloriesOnDate sums the calories burned in all trainings of the user on date.
func (r *Repo) CaloriesOnDate(ctx context.Context, userID uuid.UUID, date string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.calories-on-date")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	var total float64
	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(calories_burned), 0)::float8 FROM training_log
			WHERE user_id = $1 AND date = $2::date;`,
		userID, date,
	).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// AddExerciseLog stores the log and makes sure its name is in the user's
// exercise catalog. A nil order appends the log after the existing ones.
func (r *Repo) AddExerciseLog(ctx context.Context, e ExerciseLog, order *int) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise-log.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := ensureExercise(ctx, tx, e.UserID, e.Name, e.CreatedAt); err != nil {
			return err
		}
		return tx.QueryRow(
			ctx,
			`INSERT INTO exercise_log
				(id, user_id, training_id, name, notes, ord, score, avg_weight, avg_reps, created_at)
				VALUES ($1, $2, $3, $4, $5,
					COALESCE($6::int, (SELECT COALESCE(MAX(ord) + 1, 0) FROM exercise_log WHERE training_id = $3)),
					$7, $8, $9, $10)
				RETURNING ord;`,
			e.ID, e.UserID, e.TrainingID, e.Name, e.Notes,
			order, e.Score, e.AvgWeight, e.AvgReps, e.CreatedAt,
		).Scan(&e.Order)
	})
	if err != nil {
		// the training went away in the meantime
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}

	if e.Sets == nil {
		e.Sets = []SetLog{}
	}

	span.SetAttributes(attribute.String("exercise-log.id", e.ID.String()))
	return &e, nil
}

// GetExerciseLog returns the log with its sets regardless of its owner.
// Callers check ownership.
func (r *Repo) GetExerciseLog(ctx context.Context, id uuid.UUID) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise-log.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", id.String()))

	e, err := scanExerciseLog(r.db.QueryRow(
		ctx,
		`SELECT `+exerciseLogColumns+` FROM exercise_log WHERE id = $1;`,
		id,
	))
	if err != nil {
		return nil, err
	}

	sets, err := setsOf(ctx, r.db, []string{e.ID.String()})
	if err != nil {
		return nil, err
	}
	e.Sets = sets[e.ID]
	if e.Sets == nil {
		e.Sets = []SetLog{}
	}
	return e, nil
}

// UpdateExerciseLog stores name, notes and order. Score and averages are
// owned by UpdateExerciseLogStats.
func (r *Repo) UpdateExerciseLog(ctx context.Context, e *ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise-log.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", e.ID.String()))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := ensureExercise(ctx, tx, e.UserID, e.Name, e.CreatedAt); err != nil {
			return err
		}
		tag, err := tx.Exec(
			ctx,
			`UPDATE exercise_log SET name = $1, notes = $2, ord = $3
				WHERE id = $4 AND user_id = $5;`,
			e.Name, e.Notes, e.Order,
			e.ID, e.UserID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrExerciseLogNotFound
		}
		return nil
	})
}

// UpdateExerciseLogStats locks the exercise log row, loads its current sets and
// lets fn set the score and averages, which are then written back in the same
// transaction. Concurrent refreshes of one log are applied one after another.
func (r *Repo) UpdateExerciseLogStats(
	ctx context.Context,
	id uuid.UUID,
	fn func(e *ExerciseLog) error,
) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise-log.update-stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", id.String()))

	var e *ExerciseLog
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		e, err = scanExerciseLog(tx.QueryRow(
			ctx,
			`SELECT `+exerciseLogColumns+` FROM exercise_log WHERE id = $1 FOR UPDATE;`,
			id,
		))
		if err != nil {
			return err
		}

		sets, err := setsOf(ctx, tx, []string{id.String()})
		if err != nil {
			return err
		}
		e.Sets = sets[id]
		if e.Sets == nil {
			e.Sets = []SetLog{}
		}

		if err := fn(e); err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`UPDATE exercise_log SET score = $1, avg_weight = $2, avg_reps = $3 WHERE id = $4;`,
			e.Score, e.AvgWeight, e.AvgReps, id,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) DeleteExerciseLog(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise-log.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise-log.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_log WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseLogNotFound
	}
	return nil
}

// AddSet stores the set. A nil order appends it after the existing sets of
// the exercise log.
func (r *Repo) AddSet(ctx context.Context, s SetLog, order *int) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO set_log
			(id, user_id, exercise_log_id, type, reps, weight, rep_unit, ord, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7,
				COALESCE($8::int, (SELECT COALESCE(MAX(ord) + 1, 0) FROM set_log WHERE exercise_log_id = $3)),
				$9)
			RETURNING ord;`,
		s.ID, s.UserID, s.ExerciseLogID, string(s.Type), s.Reps, s.Weight, string(s.RepUnit),
		order, s.CreatedAt,
	).Scan(&s.Order); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrExerciseLogNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("set.id", s.ID.String()))
	return &s, nil
}

func (r *Repo) GetSet(ctx context.Context, userID, id uuid.UUID) (_ *SetLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id.String()))

	return scanSet(r.db.QueryRow(
		ctx,
		`SELECT `+setColumns+` FROM set_log WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
}

func (r *Repo) UpdateSet(ctx context.Context, s *SetLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", s.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE set_log
			SET type = $1, reps = $2, weight = $3, rep_unit = $4, ord = $5
			WHERE id = $6 AND user_id = $7;`,
		string(s.Type), s.Reps, s.Weight, string(s.RepUnit), s.Order,
		s.ID, s.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("set.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM set_log WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func ensureExercise(ctx context.Context, tx pgx.Tx, userID uuid.UUID, name string, createdAt time.Time) error {
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO exercise (user_id, name, created_at) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, name) DO NOTHING;`,
		userID, name, createdAt,
	); err != nil {
		return fmt.Errorf("ensure exercise %q: %w", name, err)
	}
	return nil
}

// loadExercises fills in the exercise logs and sets of the given trainings.
func (r *Repo) loadExercises(ctx context.Context, trainings []Training) error {
	if len(trainings) == 0 {
		return nil
	}

	trainingIDs := make([]string, 0, len(trainings))
	for _, t := range trainings {
		trainingIDs = append(trainingIDs, t.ID.String())
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseLogColumns+` FROM exercise_log
			WHERE training_id = ANY($1::uuid[])
			ORDER BY ord, created_at;`,
		trainingIDs,
	)
	if err != nil {
		return fmt.Errorf("query exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []ExerciseLog
	for rows.Next() {
		e, err := scanExerciseLog(rows)
		if err != nil {
			return err
		}
		logs = append(logs, *e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logIDs := make([]string, 0, len(logs))
	for _, e := range logs {
		logIDs = append(logIDs, e.ID.String())
	}
	sets, err := setsOf(ctx, r.db, logIDs)
	if err != nil {
		return err
	}

	byTraining := make(map[uuid.UUID][]ExerciseLog, len(trainings))
	for _, e := range logs {
		e.Sets = sets[e.ID]
		if e.Sets == nil {
			e.Sets = []SetLog{}
		}
		byTraining[e.TrainingID] = append(byTraining[e.TrainingID], e)
	}
	for i := range trainings {
		trainings[i].Exercises = byTraining[trainings[i].ID]
		if trainings[i].Exercises == nil {
			trainings[i].Exercises = []ExerciseLog{}
		}
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func setsOf(ctx context.Context, q querier, exerciseLogIDs []string) (map[uuid.UUID][]SetLog, error) {
	sets := map[uuid.UUID][]SetLog{}
	if len(exerciseLogIDs) == 0 {
		return sets, nil
	}

	rows, err := q.Query(
		ctx,
		`SELECT `+setColumns+` FROM set_log
			WHERE exercise_log_id = ANY($1::uuid[])
			ORDER BY ord, created_at;`,
		exerciseLogIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets[s.ExerciseLogID] = append(sets[s.ExerciseLogID], *s)
	}
	return sets, rows.Err()
}

func scanTraining(row pgx.Row) (*Training, error) {
	var t Training
	if err := row.Scan(
		&t.ID, &t.UserID, &t.Date, &t.Type, &t.Notes,
		&t.AvgHeartRate, &t.Duration, &t.Pauses, &t.PauseLength, &t.CaloriesBurned, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}
	return &t, nil
}

func scanExerciseLog(row pgx.Row) (*ExerciseLog, error) {
	var e ExerciseLog
	if err := row.Scan(
		&e.ID, &e.UserID, &e.TrainingID, &e.Name, &e.Notes,
		&e.Order, &e.Score, &e.AvgWeight, &e.AvgReps, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseLogNotFound
		}
		return nil, err
	}
	return &e, nil
}

func scanSet(row pgx.Row) (*SetLog, error) {
	var (
		s       SetLog
		setType string
		repUnit string
	)
	if err := row.Scan(
		&s.ID, &s.UserID, &s.ExerciseLogID, &setType, &s.Reps, &s.Weight, &repUnit, &s.Order, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	s.Type = scoring.SetType(setType)
	s.RepUnit = scoring.RepUnit(repUnit)
	return &s, nil
}
