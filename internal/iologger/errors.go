package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened for
// appending. Setting log.destination to stderr avoids the file.
func CreateLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot open log file <em>%s</em>, set log.destination to stderr to skip it",
		Vars: []any{path},
		Err:  fmt.Errorf("open log %s: %w", path, err),
	}
}
