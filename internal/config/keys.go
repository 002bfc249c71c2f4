package config

const (
	KeyAPIKey            = "linux_do_api_key"
	KeyUsername          = "linux_do_username"
	KeyBaseURL           = "linux_do_base_url"
	KeyLogLevel          = "log_level"
	KeyTransport         = "transport"
	KeyHost              = "host"
	KeyPort              = "port"
	KeyRequestTimeout    = "request_timeout"
	KeyRequestsPerSecond = "requests_per_second"
	KeyUserAgent         = "user_agent"
)
