// Package solve is the day registry: it binds every puzzle package's
// Solve adapter into one ordered table so callers (the CLI, batch
// checks, tests) can run days by number without importing ten packages.
//
// What
//
//   - Solution: the two printed answers of one day.
//   - Func: the shared adapter shape, reader in, Solution out.
//   - Day: number, short name, and runner.
//   - Days: the full table in day order.
//   - ByNumber: lookup, ErrUnknownDay for numbers outside the table.
package solve
