package http

import (
	"net/http"

	"github.com/biotrack/attendance-backend-go/internal/domain/shift"
	"github.com/biotrack/attendance-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	definitionRepo shift.DefinitionRepository
}

func NewShiftHandler(definitionRepo shift.DefinitionRepository) ShiftHandler {
	return &shiftHandlerImpl{
		definitionRepo: definitionRepo,
	}
}

// List handles GET /shifts
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	definitions, err := h.definitionRepo.List(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]shift.ShiftResponse, 0, len(definitions))
	for _, def := range definitions {
		responses = append(responses, shift.MapDefinitionToResponse(def))
	}

	response.Success(w, responses)
}
