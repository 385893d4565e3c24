package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names used by the repositories.
const (
	questionsTable = "questions"
	answersTable   = "answers"

	colID         = "id"
	colText       = "text"
	colQuestionID = "question_id"
	colUserID     = "user_id"
	colAnswer     = "answer"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt64, Increment: true},
		{Name: colText, Type: field.TypeString, Size: 2147483647},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       questionsTable,
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
	}

	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt64, Increment: true},
		{Name: colUserID, Type: field.TypeInt64},
		{Name: colAnswer, Type: field.TypeString, Size: 2147483647},
		{Name: colQuestionID, Type: field.TypeInt64},
	}
	// AnswersTable holds the schema information for the "answers" table.
	// One row per (question_id, user_id); question_id must name a question.
	AnswersTable = &schema.Table{
		Name:       answersTable,
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_question_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[3], AnswersColumns[1]},
			},
			{
				Name:    "answer_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema, in creation order.
	Tables = []*schema.Table{
		QuestionsTable,
		AnswersTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
}
