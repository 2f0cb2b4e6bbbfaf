// Package clue turns raw across/down clue entries into the per-number
// length and letter constraints the solver consumes.
//
// Length resolution priority for an entry:
//  1. explicit length field
//  2. normalized length of the answer (letters/digits only, case-folded)
//  3. sum of parenthetical numeric groups in the clue text, the
//     crossword enumeration convention (e.g. "(6,3)" resolves to 9)
//
// Entries that resolve by none of these fail with *InputError at build
// time; nothing downstream retries.
package clue
