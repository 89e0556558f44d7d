package schema

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"forum-provider/core/database"
	"forum-provider/core/naming"

	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"
)

// Report is the result of a schema check.
type Report struct {
	Qualifier string                 `json:"qualifier"`
	Matched   bool                   `json:"matched"`
	Tables    map[string]TableReport `json:"tables"`
	Errors    []string               `json:"errors"`
}

// TableReport describes one table.
type TableReport struct {
	Missing        bool     `json:"missing"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// Check compares the live tables with Models under strategy's qualifier. Inspection
// failures are recorded in the report; only a nil db or an unparsable model is an error.
func Check(db *gorm.DB, strategy *naming.Strategy) (*Report, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &Report{
		Qualifier: strategy.Qualifier(),
		Matched:   true,
		Tables:    make(map[string]TableReport),
		Errors:    []string{},
	}

	namer := naming.NewNamer(strategy)
	cache := &sync.Map{}

	for _, model := range Models() {
		s, err := gormschema.Parse(model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}

		actual, err := database.GetTableColumns(db, s.Table)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", s.Table, err))
			report.Matched = false
			continue
		}

		tbl := compare(s, actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[s.Table] = tbl
	}

	return report, nil
}

func compare(s *gormschema.Schema, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if len(actual) == 0 {
		tbl.Missing = true
		tbl.Status = "error"
		return tbl
	}

	byName := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		byName[strings.ToLower(col.Field)] = col
	}

	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		col, ok := byName[strings.ToLower(field.DBName)]
		if !ok {
			tbl.MissingColumns = append(tbl.MissingColumns, field.DBName)
			tbl.Status = "error"
			continue
		}

		expected := baseType(field.TagSettings["TYPE"])
		if expected == "" {
			continue
		}
		// nvarchar/varchar, ntext/longtext/text, int/int(11)
		if !strings.Contains(strings.ToLower(col.Type), expected) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", field.DBName, expected, col.Type))
			tbl.Status = "error"
		}
	}

	sort.Strings(tbl.MissingColumns)
	return tbl
}

// baseType strips the length from a gorm type tag: "varchar(50)" -> "varchar".
func baseType(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexByte(tag, '('); i >= 0 {
		tag = tag[:i]
	}
	return tag
}
