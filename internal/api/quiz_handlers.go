package api

import (
	"net/http"

	"github.com/vytor/lecturedeck/internal/models"
)

type submitAnswer struct {
	QuestionID  int64  `json:"question_id" validate:"required,gt=0"`
	Selected    string `json:"selected" validate:"required,oneof=A B C D"`
	TimeTakenMs int64  `json:"time_taken_ms" validate:"gte=0"`
}

type submitMCQsRequest struct {
	Answers []submitAnswer `json:"answers" validate:"required,min=1,dive"`
}

func (s *Server) handleSubmitMCQs(w http.ResponseWriter, r *http.Request) {
	var req submitMCQsRequest
	if err := s.decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{
			QuestionID:  a.QuestionID,
			Selected:    a.Selected,
			TimeTakenMs: a.TimeTakenMs,
		})
	}

	res, err := s.QuizService.Submit(r.Context(), studentFromContext(r.Context()), answers)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
