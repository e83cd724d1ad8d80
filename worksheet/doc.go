// Package worksheet evaluates a cephalopod math worksheet: problems are
// written in columns, numbers above and an operator row (+ or *) along
// the bottom.
//
// Two readings
//
//   - Token reading (part 1): whitespace-separated tokens form a grid;
//     each token column is one problem — the bottom token is the
//     operator, the tokens above are its operands.
//   - Column reading (part 2): the sheet is read character by character;
//     every character column spells one number vertically (top to
//     bottom), an operator character marks the first column of a new
//     problem, and all-whitespace columns separate problems.
//
// Both readings produce Problems; the answer is the sum of every
// problem's evaluation.
//
// Errors
//
//   - ErrMalformedSheet for ragged token grids, unknown operators, or a
//     column with no digits where a number is required; the error names
//     the offending column.
package worksheet
