package article

import (
	"errors"
	"net/http"

	"newsflow/internal/domain/entity"
	"newsflow/internal/handler/http/pathutil"
	"newsflow/internal/handler/http/respond"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/usecase/catalog"
)

type GetHandler struct{ Svc *catalog.Service }

// ServeHTTP fetches one article
// @Summary      Get article
// @Description  Returns the article stored under the given identifier.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article identifier (24-char hex)"
// @Success      200 {object} DTO "The article"
// @Failure      400 {string} string "Bad request - malformed identifier"
// @Failure      404 {string} string "Not found - no article under this identifier"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      502 {string} string "Document store unavailable"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Segment(r.URL.Path, "/articles/")
	if err != nil {
		metrics.RecordOperation(metrics.OpGet, metrics.OutcomeInvalidID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusBadGateway
		outcome := metrics.OutcomeStoreError
		if errors.Is(err, entity.ErrInvalidArticleID) {
			code = http.StatusBadRequest
			outcome = metrics.OutcomeInvalidID
		} else if errors.Is(err, catalog.ErrArticleNotFound) {
			code = http.StatusNotFound
			outcome = metrics.OutcomeNotFound
		}
		metrics.RecordOperation(metrics.OpGet, outcome)
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordOperation(metrics.OpGet, metrics.OutcomeSuccess)
	respond.JSON(w, http.StatusOK, toDTO(art))
}
