// Package csvcodec serializes the inventory to the delimited text format
// and parses such text back into items.
//
// The format is a fixed five-field line protocol:
//
//	Name,Category,Quantity,Price,LastTransaction
//
// with a header line first, one item per line in store order, categories
// by canonical name and timestamps as ISO-8601 local date-time. There is
// no quoting or escaping: names containing commas are outside the format
// (a documented boundary, not a bug to fix here). For that reason the
// codec splits fields itself rather than using encoding/csv, which would
// introduce quoting the format forbids.
//
// Parsing halts on the first malformed line and reports a structured
// ParseError; a failed parse never yields a partial item sequence.
package csvcodec
