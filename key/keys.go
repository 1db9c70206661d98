// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Portal Endpoint Configuration - these keys locate the upstream course-streaming service.
const (
	PortalBaseURL = "portal.base_url"
)

// Download Behavior - these keys govern destination paths and the external transcoder.
const (
	DownloadDir        = "download.dir"
	DownloadTranscoder = "download.transcoder"
)

// History Tracking - these keys configure the persistence of capture history.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Search Interaction - these keys define the UX parameters for schedule filtering.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Session Behavior - these keys tune the interactive acquisition pipeline.
const (
	SessionConfirmDownload = "session.confirm_download"
	SessionLectureLimit    = "session.lecture_limit"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
