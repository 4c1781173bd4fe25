// Package saql builds SAQL (Salesforce Analytics Query Language) queries
// programmatically.
//
// A query is assembled as a Stream: an append-only pipeline of statements
// (load, foreach, group, filter, order, limit, fill, cogroup). Each chaining
// call appends one statement and returns the same stream, so pipelines read
// top to bottom:
//
//	q := saql.Load("opportunities").
//		Foreach(saql.NewField("Name"), saql.NewField("Amount")).
//		Filter(saql.Gt(saql.NewField("Amount"), saql.Int(1000))).
//		Limit(10)
//	fmt.Println(q.String())
//
// renders:
//
//	q0 = load "opportunities";
//	q0 = foreach q0 generate 'Name', 'Amount';
//	q0 = filter q0 by 'Amount' > 1000;
//	q0 = limit q0 10;
//
// Key design constraints:
//   - Statement text is rendered lazily at String() time, never cached.
//     A statement resolves its stream reference (q0, q1, ...) by reading the
//     owning stream's current id, so references stay correct after Cogroup
//     renumbers the streams it combines.
//   - Validation happens when a statement is constructed, never during
//     rendering. A failed chaining call appends nothing and records the
//     first error on the stream; check Stream.Err before using the output.
//   - Rendering is pure. The same unmodified stream always renders the same
//     text.
//
// Streams are not safe for concurrent mutation. Build the query on one
// goroutine, then render as often as needed.
package saql
