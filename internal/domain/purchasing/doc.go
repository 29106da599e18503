// Package purchasing holds the purchase order pricing model: the order and its
// line items, totals arithmetic, locale-aware amount formatting, item id
// generation and the copy-on-write edit transitions (field edits, item
// add/update/delete and reset) together with their confirmation gates.
package purchasing
