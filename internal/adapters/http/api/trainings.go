package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	service "github.com/okian/ftracker/internal/app"
	"github.com/okian/ftracker/internal/domain/model"
)

// maxBodyBytes bounds POST /trainings payloads.
const maxBodyBytes = 1 << 16

// trainingRequest is the body of POST /trainings.
type trainingRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

func (r trainingRequest) validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("missing workout_type")
	}
	if len(r.Data) == 0 {
		return errors.New("missing data")
	}
	return nil
}

type trainingResponse struct {
	ID           string  `json:"id"`
	WorkoutType  string  `json:"workout_type"`
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

type typesResponse struct {
	Types []string `json:"types"`
}

// TrainingsHandler handles training requests.
type TrainingsHandler struct {
	deps Dependencies
}

// NewTrainingsHandler creates a new trainings handler.
func NewTrainingsHandler(deps Dependencies) *TrainingsHandler {
	return &TrainingsHandler{deps: deps}
}

// HandlePostTraining handles POST /trainings requests.
func (h *TrainingsHandler) HandlePostTraining(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_training"
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethodNotAllowed))
		return
	}

	var req trainingRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.Process(r.Context(), model.Package{WorkoutType: req.WorkoutType, Data: req.Data})
	if err != nil {
		switch reason := service.Reason(err); reason {
		case service.ReasonInvalidActivityType, service.ReasonInvalidParameters:
			writeError(w, http.StatusUnprocessableEntity, reason, err)
		case service.ReasonCanceled:
			writeError(w, http.StatusServiceUnavailable, reason, err)
		default:
			writeError(w, http.StatusInternalServerError, "internal", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, trainingResponse{
		ID:           report.ID,
		WorkoutType:  report.WorkoutType,
		TrainingType: report.Info.TrainingType,
		Duration:     report.Info.Duration,
		Distance:     report.Info.Distance,
		Speed:        report.Info.Speed,
		Calories:     report.Info.Calories,
		Message:      report.Message,
	})
}

// HandleTypes handles GET /trainings/types requests.
func (h *TrainingsHandler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind("api.training_types", ErrMethodNotAllowed))
		return
	}
	writeJSON(w, http.StatusOK, typesResponse{Types: h.deps.Codes()})
}
