// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Deployment target of the companion web services.
const (
	DeployPlatform = "deploy.platform"
)

// Authentication - token exchange and the local OAuth callback server.
const (
	AuthBaseURL      = "auth.base_url"
	AuthAuthorizeURL = "auth.authorize_url"
	AuthClientID     = "auth.client_id"
	AuthCallbackPort = "auth.callback_port"
	AuthKeyring      = "auth.keyring"
)

// Metadata API - title, episode and embedded server lookups.
const (
	APIBaseURL  = "api.base_url"
	APICache    = "api.cache"
	APICacheTTL = "api.cache_ttl_minutes"
)

// Network transport tuning.
const (
	NetworkFingerprint = "network.fingerprint"
)

// Watch screen defaults, used when a title has no stored preference yet.
const (
	WatchDefaultSource   = "watch.default_source"
	WatchDefaultLanguage = "watch.default_language"
	WatchSaveHistory     = "watch.save_history"
	WatchRememberTitles  = "watch.remember_titles"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface.
const (
	TUIItemSpacing   = "tui.item_spacing"
	TUISidebarWidth  = "tui.sidebar_width"
	TUIStackBelow    = "tui.stack_below"
	TUIShowEpisodeID = "tui.show_episode_id"
)

// Media playback.
const (
	Player         = "player.default"
	PlayerAutoNext = "player.autonext"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
