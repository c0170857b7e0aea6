// Package identifier generates display identifiers in the UUID version-4
// textual layout and implements the batch and copy workflow the page offers.
//
// Identifiers are 36 lowercase characters in the 8-4-4-4-12 grouping with the
// version nibble fixed to 4 and the variant nibble in 8, 9, a or b. They are
// drawn from a non-cryptographic source and make no uniqueness or security
// claim; they are for display and copy only.
package identifier
