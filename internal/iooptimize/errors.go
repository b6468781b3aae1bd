package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sigapair/airlab/pkg/errcode"
)

// OrphanRemovalError is returned when cleaning a table fails.
func OrphanRemovalError(table string, err error) error {
	msg := "Failed to remove orphaned rows from <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.OptimizerOrphanRemovalError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("delete orphans of %s: %w", table, err),
	}
}

// VacuumError is returned when updating statistics fails.
func VacuumError(stmt string, err error) error {
	msg := "Failed to run <em>%s</em>"
	vars := []any{stmt}
	return &gn.Error{
		Code: errcode.OptimizerVacuumError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", stmt, err),
	}
}
