package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// CreateDirError is returned when a directory cannot be created.
func CreateDirError(dir string, err error) error {
	return fsError(errcode.CreateDirError,
		"Cannot create directory <em>%s</em>", dir, "cannot create directory", err)
}

// CopyFileError is returned when the default config cannot be written.
func CopyFileError(file string, err error) error {
	return fsError(errcode.CopyFileError,
		"Cannot copy default config file to <em>%s</em>", file, "cannot copy file", err)
}

// ReadFileError is returned when a file cannot be read or parsed.
func ReadFileError(path string, err error) error {
	return fsError(errcode.ReadFileError,
		"Cannot read <em>%s</em>", path, "cannot read "+path, err)
}

// fsError records the caller of the public constructor in the wrapped
// error.
func fsError(code gn.ErrorCode, msg, path, what string, err error) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s: %w", fn.Name(), what, err),
	}
}
