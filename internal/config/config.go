package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultAPIURL is the base URL of the gift suggestion service.
	// The generate endpoint lives at DefaultAPIURL + GeneratePath.
	DefaultAPIURL = "https://christmas-gift-ideas.vercel.app/api"

	// GeneratePath is the path of the gift suggestion endpoint.
	GeneratePath = "/generate-gift"

	// DefaultDatabaseURL is empty; history storage is disabled unless provided.
	DefaultDatabaseURL = ""

	// DefaultRateLimit is the default number of submits per minute per IP address.
	DefaultRateLimit = 20

	// DefaultMaxInFlight bounds concurrent outbound requests in server mode.
	DefaultMaxInFlight = 16

	// DefaultSessionTTL is how long an untouched form session is kept.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultHistoryLimit is the number of entries shown on the history page.
	DefaultHistoryLimit = 50

	// SessionCookie is the name of the cookie carrying the form session id.
	SessionCookie = "giftideas_session"

	// FailureMessage is the only user-visible error text.
	FailureMessage = "Failed to generate gift ideas. Please try later."

	// Initial form values.
	DefaultGender   = "man"
	DefaultAge      = 25
	DefaultPriceMin = 30
	DefaultPriceMax = 100
)

// LoadingRefreshSeconds is how often the loading page polls for the result.
const LoadingRefreshSeconds = 2
