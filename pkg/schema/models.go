// Package schema provides the database models of airlab.
// The same models drive GORM AutoMigrate on PostgreSQL and the generated
// DDL used for embedded SQLite databases.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Report is a citizen water-quality report.
type Report struct {
	// ID is the report identifier assigned by the portal.
	ID string `db:"id" ddl:"VARCHAR(64) PRIMARY KEY" gorm:"column:id;type:varchar(64);primaryKey"`

	// UserID is the submitter of the report.
	UserID string `db:"user_id" ddl:"VARCHAR(64) NOT NULL" gorm:"column:user_id;type:varchar(64);not null"`

	// PuskesmasID is the clinic responsible for the report.
	PuskesmasID string `db:"puskesmas_id" ddl:"VARCHAR(64) NOT NULL DEFAULT ''" gorm:"column:puskesmas_id;type:varchar(64);not null;default:''"`

	// Kecamatan is the district used as the statistics area.
	Kecamatan string `db:"kecamatan" ddl:"VARCHAR(255) NOT NULL DEFAULT ''" gorm:"column:kecamatan;type:varchar(255);not null;default:'';index"`

	// Location is the free-text address of the sampled water source.
	Location string `db:"location" ddl:"TEXT NOT NULL DEFAULT ''" gorm:"column:location;type:text;not null;default:''"`

	// Status is one of pending, diproses, selesai, ditolak.
	Status string `db:"status" ddl:"VARCHAR(20) NOT NULL DEFAULT 'pending'" gorm:"column:status;type:varchar(20);not null;default:'pending'"`

	// CreatedAt is the submission time of the report.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL" gorm:"column:created_at;not null"`
}

// LabResult is one parameter row of a lab analysis. The eight rows of an
// analysis share report_id and tested_at. Column names are part of the
// export format.
type LabResult struct {
	// ReportID links the row to its report.
	ReportID string `db:"report_id" ddl:"VARCHAR(64) NOT NULL" gorm:"column:report_id;type:varchar(64);not null;uniqueIndex:idx_lab_results_report_param,priority:1"`

	// Parameter is a measured parameter or overall_safety.
	Parameter string `db:"parameter" ddl:"VARCHAR(50) NOT NULL" gorm:"column:parameter;type:varchar(50);not null;uniqueIndex:idx_lab_results_report_param,priority:2"`

	// Value is the scalar value as text, empty when not measured.
	Value string `db:"value" ddl:"VARCHAR(50) NOT NULL DEFAULT ''" gorm:"column:value;type:varchar(50);not null;default:''"`

	// Unit of the value.
	Unit string `db:"unit" ddl:"VARCHAR(20) NOT NULL DEFAULT ''" gorm:"column:unit;type:varchar(20);not null;default:''"`

	// Status is aman, warning or bahaya.
	Status string `db:"status" ddl:"VARCHAR(20) NOT NULL" gorm:"column:status;type:varchar(20);not null"`

	TestedAt    time.Time `db:"tested_at" ddl:"TIMESTAMP NOT NULL" gorm:"column:tested_at;not null"`
	LabOfficer  string    `db:"lab_officer" ddl:"VARCHAR(64) NOT NULL DEFAULT ''" gorm:"column:lab_officer;type:varchar(64);not null;default:''"`
	Notes       string    `db:"notes" ddl:"TEXT NOT NULL DEFAULT ''" gorm:"column:notes;type:text;not null;default:''"`
	PuskesmasID string    `db:"puskesmas_id" ddl:"VARCHAR(64) NOT NULL DEFAULT ''" gorm:"column:puskesmas_id;type:varchar(64);not null;default:''"`

	// SchemaVersion is the version of the row layout.
	SchemaVersion int `db:"schema_version" ddl:"INTEGER NOT NULL DEFAULT 1" gorm:"column:schema_version;not null;default:1"`
}

// Notification is a message for the submitter of a report.
type Notification struct {
	ID          string    `db:"id" ddl:"VARCHAR(36) PRIMARY KEY" gorm:"column:id;type:varchar(36);primaryKey"`
	UserID      string    `db:"user_id" ddl:"VARCHAR(64) NOT NULL" gorm:"column:user_id;type:varchar(64);not null;index"`
	PuskesmasID string    `db:"puskesmas_id" ddl:"VARCHAR(64) NOT NULL DEFAULT ''" gorm:"column:puskesmas_id;type:varchar(64);not null;default:''"`
	ReportID    string    `db:"report_id" ddl:"VARCHAR(64) NOT NULL" gorm:"column:report_id;type:varchar(64);not null"`
	Title       string    `db:"title" ddl:"VARCHAR(255) NOT NULL" gorm:"column:title;type:varchar(255);not null"`
	Message     string    `db:"message" ddl:"TEXT NOT NULL" gorm:"column:message;type:text;not null"`
	Type        string    `db:"type" ddl:"VARCHAR(20) NOT NULL" gorm:"column:type;type:varchar(20);not null"`
	IsRead      bool      `db:"is_read" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" gorm:"column:is_read;not null;default:false"`
	CreatedAt   time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL" gorm:"column:created_at;not null"`
}
