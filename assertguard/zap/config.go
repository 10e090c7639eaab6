package zap

import (
	"errors"
	"fmt"

	logpkg "github.com/LerianStudio/lib-assertguard/assertguard/log"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment selects the baseline encoder and default level.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// ErrInvalidEnvironment is returned for an unknown Environment.
var ErrInvalidEnvironment = errors.New("invalid environment")

// Config describes a diagnostic sink.
type Config struct {
	Environment Environment
	// Level is a log.ParseLevel name. Empty selects the environment default.
	Level string
	// OTelLibraryName is the instrumentation scope of the otelzap bridge.
	// Empty leaves the bridge out.
	OTelLibraryName string
}

// NewSink builds a zap logger tuned for assertion diagnostics: no sampling,
// so repeated failures are all written; no caller or stack trace, since the
// call site is already in the assertion.* fields.
func NewSink(cfg Config) (*Sink, error) {
	zcfg, err := profile(cfg.Environment)
	if err != nil {
		return nil, err
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	zcfg.Level = level

	var opts []zap.Option
	if cfg.OTelLibraryName != "" {
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}))
	}

	logger, err := zcfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build diagnostic sink: %w", err)
	}

	return &Sink{logger: logger, level: level}, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		if isLocal(cfg.Environment) {
			return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
		}

		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	level, err := logpkg.ParseLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("diagnostic sink level: %w", err)
	}

	return zap.NewAtomicLevelAt(toZapLevel(level)), nil
}

func profile(env Environment) (zap.Config, error) {
	var cfg zap.Config

	switch env {
	case EnvironmentProduction, EnvironmentStaging:
		cfg = zap.NewProductionConfig()
	case EnvironmentDevelopment, EnvironmentLocal:
		cfg = zap.NewDevelopmentConfig()
	default:
		return zap.Config{}, fmt.Errorf("%w: %q", ErrInvalidEnvironment, env)
	}

	cfg.Sampling = nil
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg, nil
}

func isLocal(env Environment) bool {
	return env == EnvironmentDevelopment || env == EnvironmentLocal
}
