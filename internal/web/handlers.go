package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/store"
)

type indexPage struct {
	Total int
}

type questionPage struct {
	Question *store.Question
}

type summaryPage struct {
	Total int
	Pairs []store.AnswerPair
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	total, err := s.questions.Count(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "index", indexPage{Total: total})
}

// handleStart sends the user to the first question, or straight to the
// summary when there are no questions.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	q, err := s.questions.NextQuestion(r.Context(), nil)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	redirectTo(w, r, q)
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		s.fail(w, r, store.ErrNotFound)
		return
	}
	q, err := s.questions.Question(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "question", questionPage{Question: q})
}

// handleAnswer records the submitted answer, then redirects to the next
// question or to the summary once the last question is answered.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(r)
	if !ok {
		s.fail(w, r, store.ErrReferentialViolation)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, "The form could not be read.")
		return
	}

	next, err := quiz.Advance(r.Context(), s.questions, s.answers, s.userID, id, r.PostForm.Get("answer"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	redirectTo(w, r, next)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	pairs, err := s.answers.AnswersForUser(r.Context(), s.userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	total, err := s.questions.Count(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "summary", summaryPage{Total: total, Pairs: pairs})
}

func redirectTo(w http.ResponseWriter, r *http.Request, q *store.Question) {
	if q == nil {
		http.Redirect(w, r, "/summary", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/questions/%d", q.ID), http.StatusSeeOther)
}

// questionID reads the {id} route variable. The route pattern guarantees
// digits, so only overflow can fail here.
func questionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
