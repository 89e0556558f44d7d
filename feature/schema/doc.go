// Package schema checks an installed forum database against the core table models.
//
// Models carry no table or column overrides: the table name comes from the configured
// naming strategy (qualifier + model name) and columns keep their Go field names, the same
// rules the ORM applies at runtime. Type expectations come from `type:` gorm tags and are
// compared loosely because each engine spells types differently (varchar vs nvarchar).
package schema
