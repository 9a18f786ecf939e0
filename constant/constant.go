package constant

// query parameters and store attributes
const (
	PARAM_POSTAL_CODE string = "postal_code"
	PARAM_LIMIT       string = "limit"
	ATTR_POSTAL_CODE  string = "postal_code"
	ATTR_VISIT_COUNT  string = "visit_count"
)

// store drivers
const (
	STORE_DYNAMODB string = "dynamodb"
	STORE_MYSQL    string = "mysql"
	STORE_REDIS    string = "redis"
	STORE_MEMORY   string = "memory"
)

const (
	CONTENT_TYPE_HTML  string = "text/html"
	CONTENT_TYPE_PLAIN string = "text/plain"
	CONTENT_TYPE_JSON  string = "application/json"
)

const SCOPE_RESULTS_READ string = "results:read"

const LEADERBOARD_LOG_TOP int = 5
