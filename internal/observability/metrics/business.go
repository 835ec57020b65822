package metrics

// Operation names used by the catalog handlers.
const (
	OpCreate         = "create"
	OpList           = "list"
	OpListByCategory = "list_by_category"
	OpGet            = "get"
	OpUpdate         = "update"
	OpDelete         = "delete"
)

// Outcome labels for catalog operations.
const (
	OutcomeSuccess    = "success"
	OutcomeNoChange   = "no_change"
	OutcomeValidation = "validation_error"
	OutcomeInvalidID  = "invalid_id"
	OutcomeNotFound   = "not_found"
	OutcomeStoreError = "store_error"
)

// RecordOperation records the outcome of a catalog operation.
// Outcome should be one of the Outcome* constants; anything else will
// create a new label value, so callers stick to the taxonomy.
func RecordOperation(operation, outcome string) {
	CatalogOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// UpdateArticleCount updates the per-category article gauge.
// Called by the periodic inventory refresher with counts read from the store.
func UpdateArticleCount(category string, count int64) {
	CatalogArticlesTotal.WithLabelValues(category).Set(float64(count))
}
