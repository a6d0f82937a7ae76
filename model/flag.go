package model

// Flags represents the parsed command line.
type Flags struct {
	// TargetVersion is the positional argument written into the env files.
	TargetVersion string
	Dir           string
	Pattern       string
	Key           string
	Output        string
	LogLevel      string
	LogFormat     string
	DryRun        bool
	Buffered      bool
	Strict        bool
	Version       bool
}

// Config holds defaults sourced from ENVBUMP_* environment variables.
type Config struct {
	Dir       string `env:"ENVBUMP_DIR,default=."`
	Pattern   string `env:"ENVBUMP_PATTERN,default=.env*"`
	Key       string `env:"ENVBUMP_KEY,default=SERVER_APP_VERSION"`
	Output    string `env:"ENVBUMP_OUTPUT,default=table"`
	LogLevel  string `env:"ENVBUMP_LOG_LEVEL,default=warn"`
	LogFormat string `env:"ENVBUMP_LOG_FORMAT,default=text"`
}
