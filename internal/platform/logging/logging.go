package logging

import "go.uber.org/zap"

// New builds the process logger. Output goes to stderr so it never mixes
// with CSV/JSON written to stdout or with the TUI frame.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
