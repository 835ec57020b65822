package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsflow/internal/domain/entity"
	"newsflow/internal/handler/http/pathutil"
	"newsflow/internal/handler/http/respond"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/usecase/catalog"
)

type UpdateHandler struct{ Svc *catalog.Service }

// ServeHTTP updates an article
// @Summary      Update article
// @Description  Replaces the article stored under the given identifier. When the stored document already equals the payload the response reports that no change was needed.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "Article identifier (24-char hex)"
// @Param        article body object true "Replacement article fields"
// @Success      200 {object} map[string]string "{\"message\":\"updated\"} or {\"message\":\"no change needed\"}"
// @Failure      400 {string} string "Bad request - malformed identifier or invalid input"
// @Failure      404 {string} string "Not found - no article under this identifier"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      502 {string} string "Document store unavailable"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Segment(r.URL.Path, "/articles/")
	if err != nil {
		metrics.RecordOperation(metrics.OpUpdate, metrics.OutcomeInvalidID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req payload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordOperation(metrics.OpUpdate, metrics.OutcomeValidation)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	outcome, err := h.Svc.Update(r.Context(), id, req.input())
	if err != nil {
		code := http.StatusBadGateway
		label := metrics.OutcomeStoreError
		var ve *entity.ValidationError
		switch {
		case errors.Is(err, entity.ErrInvalidArticleID):
			code = http.StatusBadRequest
			label = metrics.OutcomeInvalidID
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			label = metrics.OutcomeValidation
		case errors.Is(err, catalog.ErrArticleNotFound):
			code = http.StatusNotFound
			label = metrics.OutcomeNotFound
		}
		metrics.RecordOperation(metrics.OpUpdate, label)
		respond.SafeError(w, code, err)
		return
	}

	if outcome == catalog.NoChangeNeeded {
		metrics.RecordOperation(metrics.OpUpdate, metrics.OutcomeNoChange)
		respond.JSON(w, http.StatusOK, map[string]string{"message": "no change needed"})
		return
	}
	metrics.RecordOperation(metrics.OpUpdate, metrics.OutcomeSuccess)
	respond.JSON(w, http.StatusOK, map[string]string{"message": "updated"})
}
