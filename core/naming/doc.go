// Package naming maps logical model and field names onto physical database identifiers.
//
// Every table is prefixed with the configured object qualifier, which lets several forum
// instances share one physical database. Columns keep their model names untouched and
// schema-qualified naming is not supported at all.
//
// # Strategy
//
// The Strategy type carries the qualifier and exposes the naming rules:
//
//	s := naming.New("yaf_")
//	s.TableName("User")             // "yaf_User"
//	s.SequenceName("User", "UserID") // "SEQ_User_UserID"
//
// # GORM
//
// NewNamer adapts a Strategy to gorm's schema.Namer so every statement gorm generates
// uses the same table and column names as the SQL scripts.
//
//	db, err := gorm.Open(dialector, &gorm.Config{NamingStrategy: naming.NewNamer(s)})
package naming
