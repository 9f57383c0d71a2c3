package config

const (
	defaultInputFile   = "pimsler2.txt"
	defaultMediaFile   = "anki/media"
	defaultOutputFile  = "clean.json"
	defaultHeaderLines = 6
	defaultUnitCutoff  = 60
	defaultOutFormat   = "json"
	defaultOutIndent   = 2
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputFile:  defaultInputFile,
			MediaFile:  defaultMediaFile,
			OutputFile: defaultOutputFile,
		},
		Deck: Deck{
			HeaderLines: defaultHeaderLines,
			UnitCutoff:  defaultUnitCutoff,
		},
		Output: Output{
			Format: defaultOutFormat,
			Indent: defaultOutIndent,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
