// Package ledger keeps an in-memory, hash-chained log of the actions
// committed during a game session.
//
// Every Block links to the previous one through its hash, so Verify detects
// any entry modified after it was recorded. Summarize totals the session
// (rounds won, hands played, best hand) for the end-of-game report.
//
// The ledger lives as long as the session; nothing is written to disk.
package ledger
