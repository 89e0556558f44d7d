package scripts

import (
	"forum-provider/core/database"
	"forum-provider/core/naming"

	"gorm.io/gorm"
)

// RegistryTable is the unqualified name of the forum's settings table, created by the
// first install script.
const RegistryTable = "Registry"

// Installed reports whether the forum schema exists for the strategy's qualifier.
func Installed(db *gorm.DB, strategy *naming.Strategy) (bool, error) {
	return database.HasTable(db, strategy.TableName(RegistryTable))
}
