// Package settext reads and writes the structured-text format used to
// persist set and card documents.
//
// The format is line oriented: one key per line, nesting expressed by
// leading tabs, values either inline after a ':' or on the following
// indented lines. Documents are read in a single forward pass by a
// caller that knows the expected schema and descends into blocks with
// [Reader.EnterBlock], extracts values with the Handle methods, and
// leaves blocks with [Reader.ExitBlock]. Structure the caller does not
// recognize is skipped, so files written by newer application versions
// or edited by hand still load.
//
// Recoverable problems (malformed scalars, indentation anomalies,
// unknown keys) are accumulated as warnings and flushed in one message
// by [Reader.ShowWarnings]. Corruption with no safe fallback (invalid
// UTF-8, malformed dates or vectors) is a hard parse error: the reader
// stops delivering lines and [Reader.Err] reports a [*ParseError].
//
// Example usage:
//
//	r := settext.NewReader(file, settext.Config{
//	    Filename:   "set.mse-set",
//	    AppVersion: appVersion,
//	    Messages:   queue,
//	})
//	if r.EnterBlock("card") {
//	    if r.EnterBlock("name") {
//	        r.HandleString(&card.Name)
//	        r.ExitBlock()
//	    }
//	    r.ExitBlock()
//	}
//	r.ShowWarnings()
//	if err := r.Err(); err != nil {
//	    return err
//	}
package settext
