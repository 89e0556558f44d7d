// Package scripts applies the ordered SQL script lists an engine publishes.
//
// A Source yields script text by relative path (a local directory or an object-storage
// bucket). The Runner rewrites the {objectQualifier} and {databaseOwner} tokens and hands
// each script to the engine's RunSQL operation, one owned transaction per script, stopping
// at the first failure.
package scripts
