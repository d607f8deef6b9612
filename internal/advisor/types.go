package advisor

// ErrorType is the class of a failure.
type ErrorType string

const (
	PermissionError    ErrorType = "PERMISSION_ERROR"
	ExecutableNotFound ErrorType = "EXECUTABLE_NOT_FOUND"
	FileNotFound       ErrorType = "FILE_NOT_FOUND"
	ExecutionTimeout   ErrorType = "EXECUTION_TIMEOUT"
	TargetFileNotFound ErrorType = "TARGET_FILE_NOT_FOUND"
	UnknownError       ErrorType = "UNKNOWN_ERROR"
)

// Category groups error types by where the fix lies.
type Category string

const (
	CategoryConfiguration Category = "CONFIGURATION"
	CategorySystem        Category = "SYSTEM"
	CategoryUsage         Category = "USAGE"
	CategoryUnknown       Category = "UNKNOWN"
)

// Severity ranks how badly the failure blocks the user.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Action is a recovery step the caller may offer.
type Action string

const (
	ActionOpenSettings       Action = "open-settings"
	ActionRefreshDiscovery   Action = "refresh-discovery"
	ActionRetry              Action = "retry"
	ActionFixPermissions     Action = "fix-permissions"
	ActionDownloadEditor     Action = "download-editor"
	ActionResetConfiguration Action = "reset-configuration"
	ActionCheckResources     Action = "check-resources"
	ActionContactSupport     Action = "contact-support"
)

// Operation is what was being attempted when the failure happened.
type Operation string

const (
	OpLaunch   Operation = "launch"
	OpOpenFile Operation = "open-file"
	OpValidate Operation = "validate"
	OpDiscover Operation = "discover"
)

// ErrorContext describes one failure.
type ErrorContext struct {
	Err        error
	Operation  Operation
	EditorName string
	EditorPath string
	TargetPath string
	// TargetMissing reports that the file being opened does not exist.
	TargetMissing bool
	// GOOS selects platform-specific suggestions; empty means the running OS.
	GOOS string
}

// Diagnosis explains a failure.
type Diagnosis struct {
	Type      ErrorType `json:"type"`
	Category  Category  `json:"category"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Technical string    `json:"technical,omitempty"`
	Causes    []string  `json:"causes"`
}

// Recovery lists what can be done about a failure. CanAutoRecover is
// advisory; the advisor never acts on it.
type Recovery struct {
	CanAutoRecover bool     `json:"can_auto_recover"`
	Actions        []Action `json:"actions"`
	Suggestion     string   `json:"suggestion"`
}

// Report pairs a diagnosis with its recovery.
type Report struct {
	Diagnosis Diagnosis `json:"diagnosis"`
	Recovery  Recovery  `json:"recovery"`
}
