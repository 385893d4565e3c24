package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// answerRepo implements AnswerRepo. Each write runs in its own transaction.
type answerRepo struct {
	db *sql.DB
}

func (r *answerRepo) RecordAnswer(ctx context.Context, questionID, userID int64, text string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin record answer", err)
	}
	defer tx.Rollback()

	exists, err := questionExists(ctx, tx, questionID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("record answer for question %d: %w", questionID, ErrReferentialViolation)
	}

	query, args := builder().
		Insert(answersTable).
		Columns(colQuestionID, colUserID, colAnswer).
		Values(questionID, userID, text).
		OnConflict(
			entsql.ConflictColumns(colQuestionID, colUserID),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded(colAnswer)
			}),
		).
		Query()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("record answer for question %d: %w", questionID, ErrReferentialViolation)
		}
		return unavailable("record answer", err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit answer", err)
	}
	return nil
}

func (r *answerRepo) AnswersForUser(ctx context.Context, userID int64) ([]AnswerPair, error) {
	// Both tables are aliased up front; the selected columns are built
	// before Join, which would otherwise alias answers as t1.
	q := entsql.Table(questionsTable).As("q")
	a := entsql.Table(answersTable).As("a")
	query, args := builder().
		Select(q.C(colID), q.C(colText), a.C(colAnswer)).
		From(q).
		Join(a).
		On(q.C(colID), a.C(colQuestionID)).
		Where(entsql.EQ(a.C(colUserID), userID)).
		OrderBy(q.C(colID)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("answers for user", err)
	}
	defer rows.Close()

	pairs := []AnswerPair{}
	for rows.Next() {
		var p AnswerPair
		if err := rows.Scan(&p.QuestionID, &p.Question, &p.Answer); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("answers for user", err)
	}
	return pairs, nil
}

func (r *answerRepo) DeleteForUser(ctx context.Context, userID int64) (int64, error) {
	query, args := builder().
		Delete(answersTable).
		Where(entsql.EQ(colUserID, userID)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, unavailable("delete answers", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, unavailable("delete answers", err)
	}
	return n, nil
}

// questionExists checks for the question inside the answer's transaction so
// the check and the write see the same snapshot.
func questionExists(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	query, args := builder().
		Select(colID).
		From(entsql.Table(questionsTable)).
		Where(entsql.EQ(colID, id)).
		Limit(1).
		Query()

	var found int64
	err := tx.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, unavailable("check question", err)
	}
	return true, nil
}

// isForeignKeyError reports whether SQLite rejected a write because of the
// answers -> questions foreign key.
func isForeignKeyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}
