// Package functions executes engine-specific administrative operations that the ORM
// cannot express generically, such as full-text maintenance or table optimization.
//
// # Executor
//
// An Executor pairs a data.Access with an engine's Runner. Execute:
//
//   - returns a negative result without touching the database when the runner does not
//     support the operation;
//   - opens and owns a transaction when the caller did not supply one;
//   - returns a negative result when the transaction is not on the runner's engine;
//   - collects the engine's diagnostic messages for the duration of the call;
//   - commits an owned transaction only when the operation succeeded, and always
//     disposes it.
//
// Errors raised by the runner propagate unchanged. Unsupported operations and engine
// mismatches are not errors.
//
// # Usage
//
//	exec := functions.NewExecutor(access, mysql.NewFunctions(strategy), log)
//	ok, size, err := exec.Execute(ctx, functions.Scalar, "DBSize", nil, nil)
//	for _, m := range exec.Messages() {
//	    log.Info("engine message", zap.Stringer("message", m))
//	}
package functions
