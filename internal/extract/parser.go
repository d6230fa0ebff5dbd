package extract

import (
	"strings"

	"github.com/tidwall/gjson"
)

// MaxTags bounds the tags kept per item.
const MaxTags = 6

// ParseItems reads the model output and returns the normalized items.
// Output that cannot be read as a JSON object yields an empty list.
func ParseItems(text string) []Item {
	items := []Item{}

	doc, ok := parseObject(text)
	if !ok {
		return items
	}

	list := doc.Get("items")
	if !list.IsArray() {
		return items
	}

	list.ForEach(func(_, v gjson.Result) bool {
		if it, ok := normalizeItem(v); ok {
			items = append(items, it)
		}
		return true
	})

	return items
}

func parseObject(text string) (gjson.Result, bool) {
	trimmed := strings.TrimSpace(text)
	if gjson.Valid(trimmed) {
		return gjson.Parse(trimmed), true
	}

	if span, ok := salvageObject(text); ok {
		return gjson.Parse(span), true
	}

	return gjson.Result{}, false
}

// salvageObject finds the first balanced {...} span that is valid JSON.
// If none is, it falls back to the span from the first '{' to the last '}'.
func salvageObject(text string) (string, bool) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := matchBrace(text, start); end > start {
			span := text[start : end+1]
			if gjson.Valid(span) {
				return span, true
			}
		}

		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first >= 0 && last > first {
		span := text[first : last+1]
		if gjson.Valid(span) {
			return span, true
		}
	}

	return "", false
}

// matchBrace returns the index of the brace closing text[start], skipping
// braces inside JSON strings, or -1.
func matchBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func normalizeItem(v gjson.Result) (Item, bool) {
	name := strings.TrimSpace(truthyString(v.Get("name")))
	if name == "" {
		return Item{}, false
	}

	it := Item{
		Name:        name,
		Description: optionalString(v.Get("description")),
		Section:     optionalString(v.Get("section")),
		Tags:        normalizeTags(v.Get("tags")),
	}

	if p := v.Get("price"); p.Type == gjson.Number {
		price := p.Float()
		it.Price = &price
	}

	return it, true
}

// truthyString converts scalars to text. Falsy values (null, false, 0, "")
// and containers read as empty.
func truthyString(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Float() == 0 {
			return ""
		}
		return r.Raw
	case gjson.True:
		return "true"
	default:
		return ""
	}
}

func optionalString(r gjson.Result) *string {
	s := strings.TrimSpace(truthyString(r))
	if s == "" {
		return nil
	}
	return &s
}

func normalizeTags(r gjson.Result) []string {
	tags := []string{}
	if !r.IsArray() {
		return tags
	}

	for _, t := range r.Array() {
		if len(tags) == MaxTags {
			break
		}
		if t.Type == gjson.Null {
			tags = append(tags, "null")
			continue
		}
		tags = append(tags, t.String())
	}

	return tags
}
