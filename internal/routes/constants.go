package routes

var (
	UserRequestDurationSecondsBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}
	OperationLabels                   = []string{"operation"}
)

const (
	// API route constants
	UsersRouteAPI          = "/users"
	UserRouteAPI           = "/user"
	UserByKeyRouteAPI      = "/user/*"
	CreateWithListRouteAPI = "/user/createWithList"
	ResetRouteAPI          = "/reset"
	MetricsRouteAPI        = "/metrics"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// MaxBodyBytes bounds how much of a request body is read.
	MaxBodyBytes = 1 << 20

	// operation names used as metric labels
	OpList           = "list"
	OpGetByUsername  = "get_by_username"
	OpCreate         = "create"
	OpCreateWithList = "create_with_list"
	OpUpdate         = "update"
	OpDelete         = "delete"
	OpReset          = "reset"

	// message constants
	MsgResetSuccessful = "USERS_LIST reset successfully"

	// Error messages
	ErrUserNotFound        = "User not found"
	ErrNotValidRequestData = "not valid request data"

	// metrics constants
	UserRequestsTotal              = "user_requests_total"
	UserRequestsTotalHelp          = "Total number of user requests received, by operation"
	UserErrorsTotal                = "user_errors_total"
	UserErrorsTotalHelp            = "Total number of user requests that failed, by operation"
	UserRequestDurationSeconds     = "user_request_duration_seconds"
	UserRequestDurationSecondsHelp = "Duration of user requests in seconds, by operation"
	UsersStored                    = "users_stored"
	UsersStoredHelp                = "Number of users currently held in the store"
	UnrecognizedRoutesTotal        = "unrecognized_routes_total"
	UnrecognizedRoutesTotalHelp    = "Total number of requests for routes that do not exist"
)
