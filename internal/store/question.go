package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// questionRepo implements QuestionRepo with SQL built by ent's dialect
// builder.
type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) NextQuestion(ctx context.Context, current *int64) (*Question, error) {
	sel := builder().
		Select(colID, colText).
		From(entsql.Table(questionsTable)).
		OrderBy(colID).
		Limit(1)
	if current != nil {
		sel.Where(entsql.GT(colID, *current))
	}

	query, args := sel.Query()
	var q Question
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, unavailable("next question", err)
	}
	return &q, nil
}

func (r *questionRepo) Question(ctx context.Context, id int64) (*Question, error) {
	query, args := builder().
		Select(colID, colText).
		From(entsql.Table(questionsTable)).
		Where(entsql.EQ(colID, id)).
		Query()

	var q Question
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&q.ID, &q.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, unavailable("get question", err)
	}
	return &q, nil
}

func (r *questionRepo) List(ctx context.Context) ([]Question, error) {
	query, args := builder().
		Select(colID, colText).
		From(entsql.Table(questionsTable)).
		OrderBy(colID).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("list questions", err)
	}
	defer rows.Close()

	questions := []Question{}
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list questions", err)
	}
	return questions, nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	query, args := builder().
		Select(entsql.Count("*")).
		From(entsql.Table(questionsTable)).
		Query()

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, unavailable("count questions", err)
	}
	return n, nil
}

func (r *questionRepo) Seed(ctx context.Context, questions []Question) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("begin seed", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, q := range questions {
		query, args := builder().
			Insert(questionsTable).
			Columns(colID, colText).
			Values(q.ID, q.Text).
			OnConflict(
				entsql.ConflictColumns(colID),
				entsql.DoNothing(),
			).
			Query()

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, unavailable("seed question", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, unavailable("seed question", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("commit seed", err)
	}
	return inserted, nil
}
