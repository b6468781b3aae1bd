package ioinput

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// FileError is returned when the input file cannot be read.
func FileError(path string, err error) error {
	msg := "Cannot read input file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.InputFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}

// FormatError is returned when the input file is not a valid document.
func FormatError(path string, err error) error {
	msg := `Input file <em>%s</em> has a wrong format

%s`
	vars := []any{path, err.Error()}
	return &gn.Error{
		Code: errcode.InputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("parse %s: %w", path, err),
	}
}

func missingIDError(i int) error {
	return fmt.Errorf("analysis #%d has no report_id", i+1)
}

func duplicateIDError(id string) error {
	return fmt.Errorf("report_id %s occurs more than once", id)
}
