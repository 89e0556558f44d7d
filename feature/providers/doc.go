// Package providers chooses the database engine at startup.
//
// Every supported engine is listed in Select. Adding an engine means adding a case there;
// nothing registers itself as a side effect of being imported.
package providers
