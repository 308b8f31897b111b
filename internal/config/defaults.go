package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default fixtures file name
	DefaultOutputJSONFile = "source-splitting.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "fixtures"
)

// Environment overrides, read from the process environment or from a .env
// file in the project directory
const (
	EnvOutputDir  = "NBFIX_OUTPUT_DIR"
	EnvOutputFile = "NBFIX_OUTPUT_FILE"
)
