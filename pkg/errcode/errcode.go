package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Input errors
	ValidationError
	InputFileError
	InputFormatError

	// Codec errors
	DecodeValueError
	BatchShapeError

	// Store errors
	StoreOpenError
	StoreBeginError
	StoreDeleteError
	StoreInsertError
	StoreCommitError
	StoreQueryError
	StoreReportNotFoundError
	StoreUpdateStatusError
	StoreNotificationError

	// Notification errors
	NotifyPublishError

	// Analysis errors
	ReportStatusError

	// Command errors
	AnalysisRunError

	// Optimizer errors
	OptimizerOrphanRemovalError
	OptimizerVacuumError
)
