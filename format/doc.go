// Package format names the document formats handled by dx.
//
// # Usage
//
//	f, err := format.ParseFormat("llm")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Suffix()) // ".llm"
//
// Human, LLM and Machine are the three round-trip formats. JSON and YAML are
// bridge formats: they can be imported and exported but do not carry table
// schemas.
//
// # Related Packages
//
//   - github.com/najmus-sakib-hossain/zed-sub048/convert - converts between formats
//   - github.com/najmus-sakib-hossain/zed-sub048/parse - parses text formats
package format
