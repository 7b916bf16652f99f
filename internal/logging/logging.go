package logging

import "go.uber.org/zap"

// New builds the process logger. Release mode gets production JSON
// output, everything else the development console encoder.
func New(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
