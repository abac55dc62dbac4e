package constant

const (
	DateLayout = "2006-01-02"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamSearch = "q"
	RequestParamStart  = "start"
	RequestParamEnd    = "end"

	RequestParamRoomNumber       = "room_number"
	RequestParamCheckIn          = "check_in"
	RequestParamCheckOut         = "check_out"
	RequestParamExcludeBookingID = "exclude_booking_id"
)

const (
	RequestParamID     = "id"
	RequestParamNumber = "number"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	IDLength      = 8
	TopGuestLimit = 5
	Percent       = 100
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStoreScopeName      = "store"
	OtelHandlerScopeName    = "handler"
	OtelStorageScopeName    = "storage"

	OtelQueryAttributeKey      = "query"
	OtelCollectionAttributeKey = "collection"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty   = ""
	Unknown = "Unknown"
)
