package config

const (
	defaultPadToken  = "_PAD"
	defaultGoToken   = "_GO"
	defaultEOSToken  = "_EOS"
	defaultUNKToken  = "_UNK"
	defaultStorePath = "~/.local/share/seqtext/vocab.db"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tokens: Tokens{
			Pad: defaultPadToken,
			Go:  defaultGoToken,
			EOS: defaultEOSToken,
			UNK: defaultUNKToken,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
