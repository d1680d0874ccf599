package transform

import "jsonmend/internal/jsonstrict"

// CollapseDuplicateKeys is T8: if the text already strictly parses,
// re-serialize it through the ordered AST, which collapses duplicate
// object keys to their last occurrence (matching the original program's
// reliance on Python dict semantics). If it does not parse, the text is
// left untouched — this transform doubles as an early-exit optimization,
// since a text that already parses needs no further repair passes.
func CollapseDuplicateKeys(text string) (string, []string) {
	v, err := jsonstrict.Parse(text)
	if err != nil {
		return text, nil
	}
	out := jsonstrict.Encode(v)
	if out == text {
		return text, nil
	}
	return out, []string{"collapsed duplicate keys and re-serialized"}
}
