package article

import (
	"log/slog"
	"net/http"
	"time"

	"newsflow/internal/handler/http/respond"
	"newsflow/internal/observability/logging"
	"newsflow/internal/observability/metrics"
	"newsflow/internal/usecase/catalog"
)

type ListHandler struct {
	Svc    *catalog.Service
	Logger *slog.Logger
}

// ServeHTTP lists all articles
// @Summary      List articles
// @Description  Returns every article in the catalog across all categories.
// @Tags         articles
// @Produce      json
// @Success      200 {array} DTO "All stored articles"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      502 {string} string "Document store unavailable"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.logger())

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error())
		metrics.RecordOperation(metrics.OpList, metrics.OutcomeStoreError)
		respond.SafeError(w, http.StatusBadGateway, err)
		return
	}

	logger.Info("Article list request",
		"returned_count", len(articles),
		"duration_ms", time.Since(startTime).Milliseconds())

	metrics.RecordOperation(metrics.OpList, metrics.OutcomeSuccess)
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

func (h ListHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
