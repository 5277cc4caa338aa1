package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameQuotesComputed    = "quotes_computed_total"
	MetricNameQuoteCacheLookups = "quote_cache_lookups_total"
	MetricNameRateLimited       = "rate_limited_requests_total"
	MetricNameInventorySearches = "inventory_searches_total"
	MetricNameVehicleQuotes     = "vehicle_quotes_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextQuotesComputed    = "Total number of financing quotes computed, by term"
	HelpTextQuoteCacheLookups = "Quote cache lookups, by result"
	HelpTextRateLimited       = "Requests rejected by the rate limiter"
	HelpTextInventorySearches = "Inventory searches performed"
	HelpTextVehicleQuotes     = "Quotes requested for a specific vehicle, by make"
)

// Labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelTerm   = "term"
	LabelResult = "result"
	LabelMake   = "make"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
