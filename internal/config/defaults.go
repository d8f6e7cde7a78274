package config

const (
	defaultConfigPath   = "~/.config/aq/config.toml"
	projectConfigName   = "aq.toml"
	defaultSegmentMode  = "line"
	defaultLanguage     = "en"
	defaultExportDir    = "."
	defaultBasename     = "aq_values"
	defaultSheetName    = "Sheet1"
	defaultServerBind   = "127.0.0.1:7488"
	defaultMaxBodyBytes = 1 << 20
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults. Export.Dir,
// Server.Bind and Logging.Level stay empty so normalization can apply their
// environment fallbacks before the built-in defaults.
func Default() Config {
	return Config{
		Segment: Segment{
			Mode:     defaultSegmentMode,
			Language: defaultLanguage,
		},
		Export: Export{
			Basename:  defaultBasename,
			SheetName: defaultSheetName,
		},
		Server: Server{
			MaxBodyBytes: defaultMaxBodyBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
