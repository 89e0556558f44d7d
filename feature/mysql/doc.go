// Package mysql is the MySQL engine adapter.
//
// It contributes the gorm MySQL dialect with the forum naming strategy, the static
// engine metadata (connection parameters and the ordered install/upgrade script lists),
// the MySQL specific-function runner and the registration of its data access.
//
// # Specific Functions
//
//   - DBSize: size of data and indexes of the current database in megabytes.
//   - ReIndex: OPTIMIZE TABLE on every table carrying the object qualifier.
//   - RunSQL: runs the "script" parameter batch by batch (batches are separated by GO lines).
//   - FullTextSupported: whether the server version supports InnoDB full-text indexes.
//
// MySQL has no asynchronous info-message channel; the runner reads SHOW WARNINGS after
// every statement and forwards each row to the session.
package mysql
