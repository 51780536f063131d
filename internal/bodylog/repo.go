package bodylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthapi/internal/telemetry/tracing"
)

const selectColumns = `
	id, user_id, to_char(date, 'YYYY-MM-DD'), weight, height,
	fat_mass, fat_percentage, muscle_mass, water_mass, bmi, bmr, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, b BodyLog) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO body_log
			(id, user_id, date, weight, height, fat_mass, fat_percentage, muscle_mass, water_mass, bmi, bmr, created_at)
			VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		b.ID, b.UserID, b.Date, b.Weight, b.Height,
		b.FatMass, b.FatPercentage, b.MuscleMass, b.WaterMass, b.BMI, b.BMR, b.CreatedAt,
	); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("bodylog.id", b.ID.String()))
	return &b, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bodylog.id", id.String()))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+selectColumns+` FROM body_log WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	return scanBodyLog(row)
}

// Latest returns the most recent body log of the user by date, then creation time.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (_ *BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+selectColumns+` FROM body_log
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT 1;`,
		userID,
	)
	return scanBodyLog(row)
}

// LatestWeight returns the weight of the newest body log dated today or earlier.
func (r *Repo) LatestWeight(ctx context.Context, userID uuid.UUID) (_ float64, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.latest-weight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var weight float64
	err = r.db.QueryRow(
		ctx,
		`SELECT weight FROM body_log
			WHERE user_id = $1 AND date <= CURRENT_DATE
			ORDER BY date DESC, created_at DESC
			LIMIT 1;`,
		userID,
	).Scan(&weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return weight, true, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+selectColumns+` FROM body_log
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []BodyLog
	for rows.Next() {
		b, err := scanBodyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("bodylog.count", len(logs)))
	return logs, nil
}

func (r *Repo) Update(ctx context.Context, b *BodyLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bodylog.id", b.ID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE body_log SET
			weight = $1, height = $2, fat_mass = $3, fat_percentage = $4,
			muscle_mass = $5, water_mass = $6, bmi = $7, bmr = $8
			WHERE id = $9 AND user_id = $10;`,
		b.Weight, b.Height, b.FatMass, b.FatPercentage, b.MuscleMass, b.WaterMass, b.BMI, b.BMR,
		b.ID, b.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyLogNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodylog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("bodylog.id", id.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM body_log WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyLogNotFound
	}
	return nil
}

func scanBodyLog(row pgx.Row) (*BodyLog, error) {
	var b BodyLog
	if err := row.Scan(
		&b.ID, &b.UserID, &b.Date, &b.Weight, &b.Height,
		&b.FatMass, &b.FatPercentage, &b.MuscleMass, &b.WaterMass, &b.BMI, &b.BMR, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBodyLogNotFound
		}
		return nil, fmt.Errorf("scan body log: %w", err)
	}
	return &b, nil
}
