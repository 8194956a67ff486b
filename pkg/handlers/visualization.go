package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vizboard/insight-engine/pkg/apperrors"
	"github.com/vizboard/insight-engine/pkg/models"
	"github.com/vizboard/insight-engine/pkg/services"
)

// VisualizationRequest is the body of the analyze and visualize endpoints.
type VisualizationRequest struct {
	Question string          `json:"question"`
	Dataset  *models.Dataset `json:"dataset"`
}

// VisualizationHandler exposes the recommendation pipeline over HTTP. It
// performs no pipeline logic itself; once a request decodes, the pipeline
// cannot fail and the response is always 200.
type VisualizationHandler struct {
	service *services.VisualizationService
	logger  *zap.Logger
}

// NewVisualizationHandler creates a new VisualizationHandler.
func NewVisualizationHandler(service *services.VisualizationService, logger *zap.Logger) *VisualizationHandler {
	return &VisualizationHandler{service: service, logger: logger}
}

// RegisterRoutes registers the visualization routes on the given router.
func (h *VisualizationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/analyze", h.Analyze)
	r.Post("/api/visualize", h.Visualize)
}

// Analyze handles POST /api/analyze: question + dataset in, QuestionAnalysis out.
func (h *VisualizationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	analysis := h.service.AnalyzeQuestion(req.Question, req.Dataset)
	if err := WriteJSON(w, http.StatusOK, analysis); err != nil {
		h.logger.Error("Failed to encode analysis response", zap.Error(err))
	}
}

// Visualize handles POST /api/visualize: runs the full pipeline and returns
// the processed visualization.
func (h *VisualizationHandler) Visualize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	analysis := h.service.AnalyzeQuestion(req.Question, req.Dataset)
	spec := h.service.GenerateSpec(analysis, req.Dataset)
	processed := h.service.GenerateVisualization(analysis, spec, req.Dataset)
	if err := WriteJSON(w, http.StatusOK, processed); err != nil {
		h.logger.Error("Failed to encode visualization response", zap.Error(err))
	}
}

// decodeRequest decodes and validates the request body, writing the error
// response itself when validation fails.
func (h *VisualizationHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*VisualizationRequest, bool) {
	var req VisualizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("rejected malformed request body", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_payload", apperrors.ErrInvalidPayload.Error())
		return nil, false
	}
	if req.Question == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "empty_question", apperrors.ErrEmptyQuestion.Error())
		return nil, false
	}
	if req.Dataset == nil || len(req.Dataset.Columns) == 0 {
		_ = ErrorResponse(w, http.StatusBadRequest, "empty_dataset", apperrors.ErrEmptyDataset.Error())
		return nil, false
	}
	return &req, true
}
