package config

const (
	defaultTitle  = "Simple Chatbot"
	defaultWidth  = 400
	defaultHeight = 500

	defaultLogLevel = "info"
	defaultLogFile  = "logs/simplechat.log"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultLoggingConfig() LoggingConfig {
	enabled := true
	return LoggingConfig{
		Enabled: &enabled,
		Level:   defaultLogLevel,
		File:    defaultLogFile,
	}
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
	if c.Window.Width <= 0 {
		c.Window.Width = defaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = defaultHeight
	}

	def := defaultLoggingConfig()
	if c.Logging == (LoggingConfig{}) {
		c.Logging = def
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.File == "" && !c.Logging.Stdout {
		c.Logging.File = def.File
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = def.Enabled
	}
}
