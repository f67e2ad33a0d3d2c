package somlint

type Config struct {
	LogLevel string `json:"log-level,omitempty"`
	Output   string `json:"output,omitempty"`
	// IgnoreReactions lists reaction labels excluded from the analysis.
	IgnoreReactions []string `json:"ignored-reactions,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output:   "text",
	}
}
