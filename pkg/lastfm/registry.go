package lastfm

import (
	"sort"
	"strings"
)

// Category classifies API error codes so callers can handle whole families
// of failures without enumerating codes.
type Category uint8

// Error categories.
const (
	CategoryAuth Category = 1 << iota
	CategoryClient
	CategoryServer
	CategoryTemporary
	CategoryStation
)

var categoryNames = []struct {
	c    Category
	name string
}{
	{CategoryAuth, "auth"},
	{CategoryClient, "client"},
	{CategoryServer, "server"},
	{CategoryTemporary, "temporary"},
	{CategoryStation, "station"},
}

// Has reports whether all categories in o are set in c.
func (c Category) Has(o Category) bool {
	return o != 0 && c&o == o
}

// String returns the category names joined by "|", or "none".
func (c Category) String() string {
	var names []string
	for _, cn := range categoryNames {
		if c&cn.c != 0 {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ErrorDescriptor describes a documented Last.fm error code.
type ErrorDescriptor struct {
	Code        int
	Description string
	Categories  Category
}

// Common Last.fm error codes.
const (
	ErrCodeInvalidService       = 2
	ErrCodeInvalidMethod        = 3
	ErrCodeAuthenticationFailed = 4
	ErrCodeInvalidFormat        = 5
	ErrCodeInvalidParameters    = 6
	ErrCodeInvalidResourceSpec  = 7
	ErrCodeOperationFailed      = 8
	ErrCodeInvalidSessionKey    = 9
	ErrCodeInvalidAPIKey        = 10
	ErrCodeServiceOffline       = 11
	ErrCodeSubscribersOnly      = 12
	ErrCodeInvalidSignature     = 13
	ErrCodeUnauthorizedToken    = 14
	ErrCodeStreamingUnavailable = 15
	ErrCodeTempUnavailable      = 16
	ErrCodeLoginRequired        = 17
	ErrCodeTrialExpired         = 18
	ErrCodeNotEnoughContent     = 20
	ErrCodeNotEnoughMembers     = 21
	ErrCodeNotEnoughFans        = 22
	ErrCodeNotEnoughNeighbours  = 23
	ErrCodeNoPeakRadio          = 24
	ErrCodeRadioNotFound        = 25
	ErrCodeAPIKeySuspended      = 26
	ErrCodeDeprecated           = 27
	ErrCodeRateLimitExceeded    = 29
)

const unknownErrorDescription = "Unknown error"

// registry is read-only after package initialization.
// See https://www.last.fm/api/errorcodes
var registry = map[int]ErrorDescriptor{
	ErrCodeInvalidService: {
		Description: "Invalid service - This service does not exist",
		Categories:  CategoryClient,
	},
	ErrCodeInvalidMethod: {
		Description: "Invalid Method - No method with that name in this package",
		Categories:  CategoryClient,
	},
	ErrCodeAuthenticationFailed: {
		Description: "Authentication Failed - You do not have permissions to access the service",
		Categories:  CategoryAuth,
	},
	ErrCodeInvalidFormat: {
		Description: "Invalid format - This service doesn't exist in that format",
		Categories:  CategoryClient,
	},
	ErrCodeInvalidParameters: {
		Description: "Invalid parameters - Your request is missing a required parameter",
		Categories:  CategoryClient,
	},
	ErrCodeInvalidResourceSpec: {
		Description: "Invalid resource specified",
		Categories:  CategoryClient,
	},
	ErrCodeOperationFailed: {
		Description: "Operation failed - Most likely the backend service failed. Please try again.",
		Categories:  CategoryServer | CategoryTemporary,
	},
	ErrCodeInvalidSessionKey: {
		Description: "Invalid session key - Please re-authenticate",
	},
	ErrCodeInvalidAPIKey: {
		Description: "Invalid API key - You must be granted a valid key by last.fm",
		Categories:  CategoryAuth | CategoryClient,
	},
	ErrCodeServiceOffline: {
		Description: "Service Offline - This service is temporarily offline. Try again later.",
		Categories:  CategoryServer | CategoryTemporary,
	},
	ErrCodeSubscribersOnly: {
		Description: "Subscribers Only - This station is only available to paid last.fm subscribers",
	},
	ErrCodeInvalidSignature: {
		Description: "Invalid method signature supplied",
		Categories:  CategoryAuth | CategoryClient,
	},
	ErrCodeUnauthorizedToken: {
		Description: "Unauthorized Token - This token has not been authorized",
		Categories:  CategoryAuth | CategoryClient,
	},
	ErrCodeStreamingUnavailable: {
		Description: "This item is not available for streaming.",
		Categories:  CategoryClient,
	},
	ErrCodeTempUnavailable: {
		Description: "The service is temporarily unavailable, please try again.",
		Categories:  CategoryServer | CategoryTemporary,
	},
	ErrCodeLoginRequired: {
		Description: "Login: User requires to be logged in",
		Categories:  CategoryAuth | CategoryClient,
	},
	ErrCodeTrialExpired: {
		Description: "Trial Expired - This user has no free radio plays left. Subscription required.",
	},
	ErrCodeNotEnoughContent: {
		Description: "Not Enough Content - There is not enough content to play this station",
		Categories:  CategoryStation,
	},
	ErrCodeNotEnoughMembers: {
		Description: "Not Enough Members - This group does not have enough members for radio",
		Categories:  CategoryStation,
	},
	ErrCodeNotEnoughFans: {
		Description: "Not Enough Fans - This artist does not have enough fans for for radio",
		Categories:  CategoryStation,
	},
	ErrCodeNotEnoughNeighbours: {
		Description: "Not Enough Neighbours - There are not enough neighbours for radio",
		Categories:  CategoryStation,
	},
	ErrCodeNoPeakRadio: {
		Description: "No Peak Radio - This user is not allowed to listen to radio during peak usage",
		Categories:  CategoryStation | CategoryTemporary,
	},
	ErrCodeRadioNotFound: {
		Description: "Radio Not Found - Radio station not found",
		Categories:  CategoryStation | CategoryClient,
	},
	ErrCodeAPIKeySuspended: {
		Description: "API Key Suspended - This application is not allowed to make requests to the web services",
		Categories:  CategoryAuth | CategoryClient,
	},
	ErrCodeDeprecated: {
		Description: "Deprecated - This type of request is no longer supported",
		Categories:  CategoryClient,
	},
	ErrCodeRateLimitExceeded: {
		Description: "Rate Limit Exceeded - Your IP has made too many requests in a short period, exceeding our API guidelines",
		Categories:  CategoryTemporary | CategoryClient,
	},
}

func init() {
	for code, d := range registry {
		d.Code = code
		registry[code] = d
	}
}

// LookupError returns the descriptor registered for code.
func LookupError(code int) (ErrorDescriptor, bool) {
	d, ok := registry[code]
	return d, ok
}

// ErrorCodes returns every registered error code in ascending order.
func ErrorCodes() []int {
	codes := make([]int, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// newAPIError builds the typed error for an error envelope. Unregistered
// codes still produce an *APIError carrying the raw code and message.
func newAPIError(code int, message string) *APIError {
	d, ok := registry[code]
	if !ok {
		d = ErrorDescriptor{Code: code, Description: unknownErrorDescription}
	}
	return &APIError{
		Code:        code,
		Message:     message,
		Description: d.Description,
		Categories:  d.Categories,
	}
}
