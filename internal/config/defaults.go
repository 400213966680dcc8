package config

const (
	defaultLogDir         = "~/.local/share/chirp/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultNumBands       = 40
	defaultPeakThreshold  = 0.1
	defaultSampleRate     = 8000
	defaultSegmentSeconds = 1.0
	defaultPopTimeoutMS   = 1000
	defaultMinFreeLogMiB  = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Decode: Decode{
			NumBands:       defaultNumBands,
			PeakThreshold:  defaultPeakThreshold,
			SampleRate:     defaultSampleRate,
			SegmentSeconds: defaultSegmentSeconds,
		},
		Daemon: Daemon{
			PopTimeoutMillis: defaultPopTimeoutMS,
			MinFreeLogMiB:    defaultMinFreeLogMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
