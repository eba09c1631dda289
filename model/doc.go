// Package model defines the records produced by extraction.
//
// A [Result] is the single artifact of a run. It is built once by the
// extractor, optionally summarized, written as JSON and then discarded:
//
//	{
//	  "stats": {"total_paragraphs": 3, "total_tables": 1, "non_empty_paragraphs": 2},
//	  "paragraphs": [{"index": 0, "text": "Hello", "length": 5}],
//	  "tables": [{"index": 0, "rows": 1, "columns": 2, "data": [["a", "b"]]}]
//	}
//
// The field order of the structs is the key order of the JSON output.
//
// # Tables
//
// [Table.Columns] is the cell count of the first row only. Tables with
// merged or irregular rows keep their rows as they are, so later rows may
// hold more or fewer cells than Columns reports.
package model
