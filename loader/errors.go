package loader

import "errors"

var (
	ErrNoSourceData      = errors.New("no source data provided")
	ErrUnsupportedFormat = errors.New("unsupported definition format")
	ErrParseToml         = errors.New("failed to parse TOML")
	ErrParseYaml         = errors.New("failed to parse YAML")
	ErrInvalidStates     = errors.New("invalid states section")
)
