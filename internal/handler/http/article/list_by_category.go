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

type ListByCategoryHandler struct{ Svc *catalog.Service }

// ServeHTTP lists articles of one category
// @Summary      List articles by category
// @Description  Returns the articles of a single category. A known category with no articles yields an empty array.
// @Tags         articles
// @Produce      json
// @Param        category path string true "Category name" Enums(Sports, Politics, Technology, Health, Culture)
// @Success      200 {array} DTO "Articles of the category"
// @Failure      400 {string} string "Bad request - unknown category"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      502 {string} string "Document store unavailable"
// @Router       /articles/category/{category} [get]
func (h ListByCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	category, err := pathutil.Segment(r.URL.Path, "/articles/category/")
	if err != nil {
		metrics.RecordOperation(metrics.OpListByCategory, metrics.OutcomeValidation)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	articles, err := h.Svc.ListByCategory(r.Context(), category)
	if err != nil {
		code := http.StatusBadGateway
		outcome := metrics.OutcomeStoreError
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			code = http.StatusBadRequest
			outcome = metrics.OutcomeValidation
		}
		metrics.RecordOperation(metrics.OpListByCategory, outcome)
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordOperation(metrics.OpListByCategory, metrics.OutcomeSuccess)
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
