package server

import (
	"encoding/json"

	"github.com/playperu/minicourse/internal/content"
	"github.com/playperu/minicourse/internal/course"
	"github.com/playperu/minicourse/internal/progress"
	"github.com/playperu/minicourse/internal/quiz"
)

type ProgressResponse struct {
	CurrentStep    int         `json:"currentStep"`
	CompletedSteps []int       `json:"completedSteps"`
	QuizScores     map[int]int `json:"quizScores"`
	TotalSteps     int         `json:"totalSteps"`
	Percent        int         `json:"percent"`
}

type CourseResponse struct {
	Progress ProgressResponse `json:"progress"`
	Tracker  course.Tracker   `json:"tracker"`
}

type StepResponse struct {
	Step    int              `json:"step"`
	Kind    course.StepKind  `json:"kind"`
	Nav     course.Nav       `json:"nav"`
	Tracker course.Tracker   `json:"tracker"`
	Video   *content.Video   `json:"video,omitempty"`
	Article *content.Article `json:"article,omitempty"`
	Session *SessionResponse `json:"session,omitempty"`
}

// QuestionView is a question as shown while answering; the correct answer
// and explanation stay hidden until reveal.
type QuestionView struct {
	ID      string    `json:"id"`
	Kind    quiz.Kind `json:"kind"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"`
	Weight  int       `json:"weight"`
}

type SessionResponse struct {
	ID             string          `json:"id"`
	Step           int             `json:"step"`
	QuizID         string          `json:"quizId"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PassThreshold  int             `json:"passThreshold"`
	Phase          quiz.Phase      `json:"phase"`
	Index          int             `json:"index"`
	Total          int             `json:"total"`
	Answers        quiz.Record     `json:"answers"`
	Timed          bool            `json:"timed"`
	Remaining      int             `json:"remaining,omitempty"`
	RemainingLabel string          `json:"remainingLabel,omitempty"`
	Current        *QuestionView   `json:"current,omitempty"`
	Board          *quiz.BoardView `json:"board,omitempty"`
	Order          quiz.Sequence   `json:"order,omitempty"`
	Result         *quiz.Result    `json:"result,omitempty"`
}

// AnswerRequest carries a string or an array of strings depending on the
// question kind. An empty value clears the answer.
type AnswerRequest struct {
	Answer json.RawMessage `json:"answer"`
}

type MatchRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func progressResponse(s *progress.Store) ProgressResponse {
	st := s.Snapshot()
	return ProgressResponse{
		CurrentStep:    st.CurrentStep,
		CompletedSteps: st.CompletedSteps,
		QuizScores:     st.QuizScores,
		TotalSteps:     st.TotalSteps,
		Percent:        s.Percent(),
	}
}

func sessionResponse(ls *liveSession) SessionResponse {
	q := ls.sess.Quiz()
	st := ls.sess.State()

	resp := SessionResponse{
		ID:            ls.id,
		Step:          ls.step,
		QuizID:        q.ID,
		Title:         q.Title,
		Description:   q.Description,
		PassThreshold: q.PassThreshold,
		Phase:         st.Phase,
		Index:         st.Index,
		Total:         st.Total,
		Answers:       st.Answers,
		Timed:         st.Timed,
		Result:        st.Result,
	}
	if st.Timed {
		resp.Remaining = st.Remaining
		resp.RemainingLabel = quiz.FormatRemaining(st.Remaining)
	}
	if st.Phase == quiz.PhaseRevealed || st.Index >= len(q.Questions) {
		return resp
	}

	cur := q.Questions[st.Index]
	resp.Current = &QuestionView{
		ID:      cur.ID,
		Kind:    cur.Kind,
		Prompt:  cur.Prompt,
		Options: cur.Options,
		Weight:  cur.Weight,
	}
	switch cur.Kind {
	case quiz.KindMatching:
		if b, err := ls.sess.Board(cur.ID); err == nil {
			resp.Board = &b
		}
	case quiz.KindOrdering:
		if o, err := ls.sess.Order(cur.ID); err == nil {
			resp.Order = o
		}
	}
	return resp
}
