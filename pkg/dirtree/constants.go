package dirtree

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitFilesystemError = 11 // Listing or classifying an entry failed mid-walk
	ExitPatternError    = 12 // An include or exclude pattern could not be compiled
	ExitNotContained    = 13 // contains: path is not a file inside the tree
)

const (
	// PathSeparator separates segments in the string form of a RelativePath,
	// independent of the host operating system.
	PathSeparator = "/"

	// ConfigFileName is the project configuration file looked up in the tree root.
	ConfigFileName = "dirtree.yaml"

	// EnvInclude and EnvExclude hold comma-separated glob lists merged into the
	// pattern configuration by the command line.
	EnvInclude = "DIRTREE_INCLUDE"
	EnvExclude = "DIRTREE_EXCLUDE"
)
