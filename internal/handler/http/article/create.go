package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsflow/internal/domain/entity"
	"newsflow/internal/handler/http/respond"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/usecase/catalog"
)

type CreateHandler struct{ Svc *catalog.Service }

// ServeHTTP creates an article
// @Summary      Create article
// @Description  Creates a new article. The publication date defaults to today when omitted.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body object true "Article fields"
// @Success      201 {object} DTO "Created article including its identifier"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      502 {string} string "Document store unavailable"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req payload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordOperation(metrics.OpCreate, metrics.OutcomeValidation)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), req.input())
	if err != nil {
		code := http.StatusBadGateway
		outcome := metrics.OutcomeStoreError
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			code = http.StatusBadRequest
			outcome = metrics.OutcomeValidation
		}
		metrics.RecordOperation(metrics.OpCreate, outcome)
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordOperation(metrics.OpCreate, metrics.OutcomeSuccess)
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
