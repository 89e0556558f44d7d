// Package data is the generic database-access abstraction the provider layer builds on.
//
// An Access wraps a gorm connection for one provider and opens transactions on it.
// A Tx tracks whether it was committed so that Dispose can be deferred unconditionally:
// it rolls back an uncommitted transaction and does nothing otherwise.
//
//	tx, err := access.BeginTransaction(ctx)
//	if err != nil {
//	    return err
//	}
//	defer tx.Dispose()
//	// ... work on tx.Connection()
//	return tx.Commit()
package data
