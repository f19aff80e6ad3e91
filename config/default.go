package config

import "github.com/miru-cli/miru/key"

var (
	platforms   = []string{"vercel", "cloudflare"}
	sourceTypes = []string{"default", "gogo"}
	languages   = []string{"sub", "dub"}
	players     = []string{"mpv", "browser"}
	levels      = []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}
	iconSets    = []string{"emoji", "kaomoji", "plain", "squares", "nerd"}
)

var fields = []Field{
	{Key: key.DeployPlatform, Value: "cloudflare", Description: "Deployment target of the token exchange service", Allowed: platforms},
	{Key: key.AuthBaseURL, Value: "https://miru.example.workers.dev", Description: "Base URL of the token exchange service"},
	{Key: key.AuthAuthorizeURL, Value: "https://anilist.co/api/v2/oauth/authorize", Description: `Authorization endpoint opened in the browser by "miru login"`},
	{Key: key.AuthClientID, Value: "", Description: "OAuth client id sent to the authorization endpoint"},
	{Key: key.AuthCallbackPort, Value: 8000, Description: "Port of the local OAuth callback server"},
	{Key: key.AuthKeyring, Value: false, Description: "Store the access token in the system keyring instead of the local store"},

	{Key: key.APIBaseURL, Value: "https://api.consumet.org", Description: "Base URL of the anime metadata API"},
	{Key: key.APICache, Value: true, Description: "Cache metadata API responses on disk"},
	{Key: key.APICacheTTL, Value: 60, Description: "Lifetime of cached metadata API responses, in minutes"},
	{Key: key.NetworkFingerprint, Value: false, Description: "Use a browser TLS fingerprint for outgoing requests"},

	{Key: key.WatchDefaultSource, Value: "default", Description: "Source type used for titles without a stored preference", Allowed: sourceTypes},
	{Key: key.WatchDefaultLanguage, Value: "sub", Description: "Language used for titles without a stored preference", Allowed: languages},
	{Key: key.WatchSaveHistory, Value: true, Description: "Record opened episodes in the watched set"},
	{Key: key.WatchRememberTitles, Value: true, Description: "Remember opened titles to complete anime ids in the shell"},

	{Key: key.IconsVariant, Value: "plain", Description: "Icon set, nerd requires a nerd font", Allowed: iconSets},
	{Key: key.TUIItemSpacing, Value: 1, Description: "Blank lines between episode list items"},
	{Key: key.TUISidebarWidth, Value: 42, Description: "Width of the episode list column in wide terminals"},
	{Key: key.TUIStackBelow, Value: 100, Description: "Terminal width under which the player and the episode list are stacked"},
	{Key: key.TUIShowEpisodeID, Value: false, Description: "Show episode ids under list items"},

	{Key: key.Player, Value: "mpv", Description: "Media player to use", Allowed: players},
	{Key: key.PlayerAutoNext, Value: true, Description: "Play the next episode when the player exits"},

	{Key: key.LogsWrite, Value: false, Description: "Write logs to a daily file"},
	{Key: key.LogsLevel, Value: "info", Description: "Lowest level written, from least to most verbose", Allowed: levels},
	{Key: key.LogsJson, Value: false, Description: "Write logs as json"},
	{Key: key.CliColored, Value: true, Description: "Colorize CLI output"},
	{Key: key.CliVersionCheck, Value: true, Description: "Check for a newer release once a day"},
}

// Default maps every setting key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to environment variables, in declaration order.
var EnvExposed []string

func init() {
	for _, f := range fields {
		if _, ok := Default[f.Key]; ok {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
