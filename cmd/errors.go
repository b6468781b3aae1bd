/*
Copyright © 2025 The SIGAP Air Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// EmptySchemaError is returned when a command needs tables that do not
// exist yet.
func EmptySchemaError() error {
	msg := `Database has no airlab tables

<em>How to fix:</em>
  Run 'airlab create' first to initialize the schema.`
	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Err:  fmt.Errorf("database schema does not exist"),
	}
}

// DateFlagError is returned for dates not in YYYY-MM-DD form.
func DateFlagError(s string, err error) error {
	msg := "Date <em>%s</em> must look like 2025-05-12"
	vars := []any{s}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad date %q: %w", s, err),
	}
}

// ReportFlagError is returned when a required report field is missing.
func ReportFlagError(flag string) error {
	msg := "Flag <em>--%s</em> is required"
	vars := []any{flag}
	return &gn.Error{
		Code: errcode.ValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing --%s", flag),
	}
}

// AnalysisFailedError is returned when some analyses of a run failed.
func AnalysisFailedError(failed, total int) error {
	msg := "%d of %d analyses failed, see the log for details"
	vars := []any{failed, total}
	return &gn.Error{
		Code: errcode.AnalysisRunError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d of %d analyses failed", failed, total),
	}
}
