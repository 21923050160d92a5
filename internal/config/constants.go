package config

import "time"

const (
	envBaseURL     = "NHL_API_BASE_URL"
	envHTTPTimeout = "NHL_HTTP_TIMEOUT"

	envMetricsEnabled      = "METRICS_ENABLED"
	envMetricsServiceName  = "METRICS_SERVICE_NAME"
	envMetricsOtlpEndpoint = "METRICS_OTLP_ENDPOINT"
	envMetricsOtlpInsecure = "METRICS_OTLP_INSECURE"

	defaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	defaultHTTPTimeout = 10 * time.Second

	defaultMetricsEnabled     = false
	defaultMetricsServiceName = "nhl-stats-client"
)
