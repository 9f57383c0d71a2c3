// Package deck parses tab-delimited flashcard exports into candidate records.
//
// An export starts with a fixed number of metadata lines, followed by one
// card per row. Only rows with at least six fields whose deck name encodes a
// "Level <n>::Lesson <m>" pair qualify; every other row is dropped silently.
// The level and lesson are linearized into a unit number, with thirty
// lessons per level, and the audio field is unwrapped from its
// "[sound:...]" syntax.
package deck
