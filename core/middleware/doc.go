// Package middleware groups the Fiber middleware of the maintenance server.
//
//   - rayid: tags every request with a RayID for log correlation.
//   - auth: API-key check for the /provider routes.
package middleware
