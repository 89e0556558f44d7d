package naming

import (
	"errors"

	"gorm.io/gorm/schema"
)

// ErrNotImplemented is returned for schema-qualified names, which no engine supports.
var ErrNotImplemented = errors.New("schema names are not implemented")

// ModelDefinition describes a model by its logical name.
type ModelDefinition struct {
	// Name is the model name before any qualifier is applied.
	Name string
}

// DefinitionOf builds a ModelDefinition from a parsed gorm schema.
func DefinitionOf(s *schema.Schema) ModelDefinition {
	return ModelDefinition{Name: s.Name}
}

// Strategy holds the naming rules for one configured database.
type Strategy struct {
	qualifier string
}

// New creates a Strategy that prefixes tables with qualifier. An empty qualifier is valid.
func New(qualifier string) *Strategy {
	return &Strategy{qualifier: qualifier}
}

// Qualifier returns the configured table prefix.
func (s *Strategy) Qualifier() string {
	return s.qualifier
}

// ColumnName returns name unchanged.
func (s *Strategy) ColumnName(name string) string {
	return name
}

// TableName prefixes name with the qualifier.
func (s *Strategy) TableName(name string) string {
	return s.qualifier + name
}

// ModelTableName resolves the model to its name and qualifies it.
func (s *Strategy) ModelTableName(def ModelDefinition) string {
	return s.TableName(def.Name)
}

// SequenceName returns SEQ_{model}_{field}.
func (s *Strategy) SequenceName(model, field string) string {
	return "SEQ_" + model + "_" + field
}

// ApplyNameRestrictions returns name unchanged; reserved words are not escaped.
func (s *Strategy) ApplyNameRestrictions(name string) string {
	return name
}

// SchemaName always fails with ErrNotImplemented.
func (s *Strategy) SchemaName(name string) (string, error) {
	return "", ErrNotImplemented
}

// ModelSchemaName always fails with ErrNotImplemented.
func (s *Strategy) ModelSchemaName(def ModelDefinition) (string, error) {
	return s.SchemaName(def.Name)
}
