package rest

const (
	RouteRecords = "/records"
	RouteRecord  = RouteRecords + "/:record_id"

	RoutePostal = "/postal/:cep"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
