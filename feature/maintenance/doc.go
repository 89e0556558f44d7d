// Package maintenance exposes the selected database provider over HTTP.
//
// Routes (all under /provider):
//   - GET  /provider                     name, dialect and connection parameters
//   - GET  /provider/installed           whether the forum schema exists
//   - GET  /provider/schema              core table column/type check
//   - GET  /provider/scripts/:kind       ordered script list
//   - POST /provider/connection-string   build a native connection string
//   - POST /provider/functions/:operation run an engine-specific function
//
// Each request resolves its data access from a fresh registry scope, so one request is
// one unit of work.
package maintenance
