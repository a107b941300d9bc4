// Package parse parses the dx text formats into documents.
//
// # Usage
//
//	// Parse the human format
//	doc, err := parse.Human([]byte("name:dx\nversion:1"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse the LLM format
//	doc, err := parse.LLM([]byte("name=dx users[id%i name%s](1 Alice)(2 Bob)"))
//
//	// Choose by format, with options
//	doc, err := parse.Parse(data, parse.ParseFormat(format.LLMFormat), parse.Strict(true))
//
// Both parsers resolve aliases (`$name=value`), prefix inheritance (`^key`)
// and ditto cells (`_`) before returning, so documents never contain them.
//
// Errors are *Error values carrying a Kind and a 1-based line and column.
// Use errors.Is with the Err* sentinels to test for a kind.
//
// # Related Packages
//
//   - github.com/najmus-sakib-hossain/zed-sub048/ir - document model
//   - github.com/najmus-sakib-hossain/zed-sub048/encode - format documents as text
//   - github.com/najmus-sakib-hossain/zed-sub048/token - tokenization
package parse
