package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns the column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if col := t.Field(i).Tag.Get("db"); col != "" {
			res = append(res, col)
		}
	}
	return res
}

// ColumnDefs maps column names of a model to their DDL definitions.
func ColumnDefs(model any) map[string]string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	res := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if col := f.Tag.Get("db"); col != "" {
			res[col] = f.Tag.Get("ddl")
		}
	}
	return res
}

// DDL returns table and index statements of all models in creation
// order. It is used where GORM does not manage the schema.
func DDL() []string {
	var res []string
	for _, m := range AllModels() {
		g, ok := m.(DDLGenerator)
		if !ok {
			continue
		}
		res = append(res, g.TableDDL())
		res = append(res, g.IndexDDL()...)
	}
	return res
}

// Report DDL methods
func (r Report) TableDDL() string {
	return generateDDL(r, "reports")
}

func (r Report) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_reports_kecamatan ON reports(kecamatan);",
	}
}

func (r Report) TableName() string {
	return "reports"
}

// LabResult DDL methods
func (lr LabResult) TableDDL() string {
	return generateDDL(lr, "lab_results")
}

func (lr LabResult) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_lab_results_report_param " +
			"ON lab_results(report_id, parameter);",
	}
}

func (lr LabResult) TableName() string {
	return "lab_results"
}

// Notification DDL methods
func (n Notification) TableDDL() string {
	return generateDDL(n, "notifications")
}

func (n Notification) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id);",
	}
}

func (n Notification) TableName() string {
	return "notifications"
}
