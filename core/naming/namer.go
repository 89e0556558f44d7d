package naming

import (
	"gorm.io/gorm/schema"
)

// Namer bridges a Strategy into gorm. Index, checker and foreign key names are derived
// by gorm's default strategy from the already qualified table names.
type Namer struct {
	schema.NamingStrategy
	strategy *Strategy
}

var _ schema.Namer = (*Namer)(nil)

// NewNamer creates a gorm namer backed by s.
func NewNamer(s *Strategy) *Namer {
	return &Namer{
		NamingStrategy: schema.NamingStrategy{NoLowerCase: true, SingularTable: true},
		strategy:       s,
	}
}

// TableName qualifies the model name gorm derived from the struct.
func (n *Namer) TableName(table string) string {
	return n.strategy.TableName(table)
}

// JoinTableName qualifies many-to-many join tables like any other table.
func (n *Namer) JoinTableName(joinTable string) string {
	return n.strategy.TableName(joinTable)
}

// ColumnName keeps the field name as declared on the model.
func (n *Namer) ColumnName(table, column string) string {
	return n.strategy.ColumnName(column)
}

// SchemaName panics with ErrNotImplemented; gorm's interface has no error return.
func (n *Namer) SchemaName(table string) string {
	name, err := n.strategy.SchemaName(table)
	if err != nil {
		panic(err)
	}
	return name
}
