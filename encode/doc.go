// Package encode formats documents as human or LLM text.
//
// # Usage
//
//	doc, _ := parse.Human(text)
//	fmt.Print(encode.HumanString(doc))
//
//	// compact LLM text with abbreviated keys and ditto cells
//	cfg := encode.DefaultLLMConfig()
//	cfg.AbbreviateKeys = true
//	out, err := encode.LLMString(doc, cfg)
//
// Both formatters are deterministic and, with MaxTextLength left at 0,
// lossless: parsing their output yields an equal document.
//
// # Related Packages
//
//   - github.com/najmus-sakib-hossain/zed-sub048/parse - the inverse
//   - github.com/najmus-sakib-hossain/zed-sub048/abbrev - key dictionaries
package encode
