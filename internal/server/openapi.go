package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus documents one entry of the /healthz body.
type HealthStatus struct {
	Status string `json:"status"`
}

type StepPath struct {
	N int `path:"n"`
}

type SessionPath struct {
	ID string `path:"id"`
}

type QuestionPath struct {
	ID         string `path:"id"`
	QuestionID string `path:"questionID"`
}

type answerReq struct {
	QuestionPath
	AnswerRequest
}

type matchReq struct {
	QuestionPath
	MatchRequest
}

type unmatchReq struct {
	QuestionPath
	Left string `query:"left"`
}

type moveReq struct {
	QuestionPath
	MoveRequest
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Mini Course API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the four-step mini course: progress, step content and quiz sessions.")

	add := func(method, path, summary, desc string, req any, resps ...func(openapi.OperationContext)) {
		op, _ := r.NewOperationContext(method, path)
		op.SetSummary(summary)
		op.SetDescription(desc)
		if req != nil {
			op.AddReqStructure(req)
		}
		for _, fn := range resps {
			fn(op)
		}
		_ = r.AddOperation(op)
	}
	resp := func(v any, status int) func(openapi.OperationContext) {
		return func(op openapi.OperationContext) {
			op.AddRespStructure(v, openapi.WithHTTPStatus(status))
		}
	}
	errResp := func(status int) func(openapi.OperationContext) {
		return resp(ErrorResponse{}, status)
	}

	add(http.MethodGet, "/healthz", "Health check",
		"Returns the health status of backend dependencies.", nil,
		resp(map[string]HealthStatus{}, http.StatusOK),
		resp(map[string]HealthStatus{}, http.StatusServiceUnavailable))

	add(http.MethodGet, "/api/course", "Course progress",
		"Returns the persisted progress and the step tracker.", nil,
		resp(CourseResponse{}, http.StatusOK))

	add(http.MethodPost, "/api/progress/reset", "Reset progress",
		"Returns to step 1, clears completions and scores and discards live quiz sessions.", nil,
		resp(ProgressResponse{}, http.StatusOK))

	add(http.MethodPost, "/api/progress/steps/{n}/complete", "Complete step",
		"Marks a video or article step as completed. Quiz steps complete by passing.", StepPath{},
		resp(ProgressResponse{}, http.StatusOK), errResp(http.StatusNotFound), errResp(http.StatusConflict))

	add(http.MethodGet, "/api/steps/{n}", "Open step",
		"Sets the current step and returns its payload. Quiz steps start a fresh session, replacing any earlier one.",
		StepPath{},
		resp(StepResponse{}, http.StatusOK), errResp(http.StatusNotFound), errResp(http.StatusInternalServerError))

	add(http.MethodGet, "/api/sessions/{id}", "Get session",
		"Returns the current question while answering, or the graded review once revealed.", SessionPath{},
		resp(SessionResponse{}, http.StatusOK), errResp(http.StatusNotFound))

	add(http.MethodDelete, "/api/sessions/{id}", "Leave session",
		"Discards the session and stops its countdown.", SessionPath{},
		resp(nil, http.StatusNoContent), errResp(http.StatusNotFound))

	add(http.MethodPut, "/api/sessions/{id}/answers/{questionID}", "Answer question",
		"Records an answer, replacing any earlier one. An empty string or array clears it.", answerReq{},
		resp(SessionResponse{}, http.StatusOK), errResp(http.StatusBadRequest),
		errResp(http.StatusNotFound), errResp(http.StatusConflict))

	for _, a := range []struct{ path, summary, desc string }{
		{"/next", "Next question", "Advances when the current question is answered; reveals after the last one."},
		{"/previous", "Previous question", "Moves back one question keeping answers."},
		{"/finish", "Finish quiz", "Reveals the session regardless of how many questions are answered."},
	} {
		add(http.MethodPost, "/api/sessions/{id}"+a.path, a.summary, a.desc, SessionPath{},
			resp(SessionResponse{}, http.StatusOK), errResp(http.StatusNotFound), errResp(http.StatusConflict))
	}

	add(http.MethodPost, "/api/sessions/{id}/matches/{questionID}", "Pair items",
		"Pairs a left item with a right item of a matching question, replacing earlier pairings of either.", matchReq{},
		resp(SessionResponse{}, http.StatusOK), errResp(http.StatusBadRequest), errResp(http.StatusConflict))

	add(http.MethodDelete, "/api/sessions/{id}/matches/{questionID}", "Unpair items",
		"Removes the pairing of the given left item, or all pairings when left is omitted.", unmatchReq{},
		resp(SessionResponse{}, http.StatusOK), errResp(http.StatusBadRequest), errResp(http.StatusConflict))

	add(http.MethodPost, "/api/sessions/{id}/order/{questionID}", "Move item",
		"Moves one item of an ordering question and records the resulting order.", moveReq{},
		resp(SessionResponse{}, http.StatusOK), errResp(http.StatusBadRequest), errResp(http.StatusConflict))

	events, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/events")
	events.SetSummary("Session events")
	events.SetDescription("Server-Sent Events: an initial state, then tick events each second and a final revealed or closed event.")
	events.AddReqStructure(SessionPath{})
	events.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(events)

	socket, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/ws")
	socket.SetSummary("Session socket")
	socket.SetDescription("Websocket carrying the same events as /events as JSON frames. The first frame is {type: state, session}.")
	socket.AddReqStructure(SessionPath{})
	socket.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols))
	_ = r.AddOperation(socket)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
