// Package advisor classifies editor failures and maps each class to a
// diagnosis and an ordered list of recovery actions.
//
// Classification is deterministic and the first matching rule wins:
//
//  1. permission failures (fs.ErrPermission, "permission denied",
//     "operation not permitted")
//  2. "cannot run program" or exec.ErrNotFound
//  3. "no such file" or fs.ErrNotExist
//  4. "access denied"
//  5. timeouts ("timeout", context.DeadlineExceeded)
//  6. an open-file operation whose target is missing
//  7. anything else
//
// The advisor performs no I/O. Callers report facts such as a missing
// target through [ErrorContext].
package advisor
