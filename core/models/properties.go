package models

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/namecorpus/core/errors"
)

// propertiesFile is a parsed Java-style .properties file.
type propertiesFile struct {
	Entries []propertyEntry `parser:"@@*"`
}

// propertyEntry is one meaningful line: key=value, key: value or a bare key.
type propertyEntry struct {
	Pair string `parser:"  @Pair"`
	Bare string `parser:"| @Bare"`
}

// propertiesLexer is line based. Order matters: comments win over pairs, and
// pairs over bare keys.
var propertiesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `[#!][^\r\n]*`},
	{Name: "Pair", Pattern: `[^\s#!=:][^=:\r\n]*[=:][^\r\n]*`},
	{Name: "Bare", Pattern: `[^\s#!=:][^\r\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\f]+`},
	{Name: "Newline", Pattern: `[\r\n]+`},
})

var propertiesParser = participle.MustBuild[propertiesFile](
	participle.Lexer(propertiesLexer),
	participle.Elide("Comment", "Whitespace", "Newline"),
)

// ParseProperties parses .properties text. Keys and values are trimmed; the
// first '=' or ':' separates them. Later duplicates override earlier keys.
func ParseProperties(name string, data []byte) (map[string]string, error) {
	pf, err := propertiesParser.ParseBytes(name, data)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  "properties",
			Path:    name,
			Message: "invalid properties file",
			Err:     err,
		}
	}

	props := make(map[string]string, len(pf.Entries))
	for _, e := range pf.Entries {
		if e.Bare != "" {
			props[strings.TrimSpace(e.Bare)] = ""
			continue
		}
		idx := strings.IndexAny(e.Pair, "=:")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(e.Pair[:idx])
		props[key] = strings.TrimSpace(e.Pair[idx+1:])
	}
	return props, nil
}
