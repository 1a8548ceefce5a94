package config

// Environment keys read by the page server and the content API.
const (
	KeyPort              = "PORT"
	KeyAPIPort           = "API_PORT"
	KeyAPIBaseURL        = "API_BASE_URL"
	KeyRenderWait        = "RENDER_WAIT"
	KeyRoleInterval      = "ROLE_INTERVAL"
	KeyPageIdleTimeout   = "PAGE_IDLE_TIMEOUT"
	KeyMaxPages          = "MAX_PAGES"
	KeyReadTimeout       = "READ_TIMEOUT_SECONDS"
	KeyWriteTimeout      = "WRITE_TIMEOUT_SECONDS"
	KeyIdleTimeout       = "IDLE_TIMEOUT_SECONDS"
	KeyAcceptedOrigins   = "ACCEPTED_ORIGINS"
	KeyContentFile       = "CONTENT_FILE"
	KeyContentWatch      = "CONTENT_WATCH"
	KeyResendAPIKey      = "RESEND_API_KEY"
	KeyResendFromEmail   = "RESEND_FROM_EMAIL"
	KeyContactRecipients = "CONTACT_RECIPIENTS"
	KeyLogLevel          = "LOG_LEVEL"
	KeyLogFormat         = "LOG_FORMAT"
	KeySiteName          = "SITE_NAME"
)

const (
	DefaultAPIBaseURL = "http://localhost:5000"
	DefaultSiteName   = "Portfolio"
)
