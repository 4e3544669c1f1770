package spec

// TypeToken names the semantic shape of one positional notification argument.
type TypeToken string

const (
	Integer          TypeToken = "integer"
	Text             TypeToken = "text"
	OpaqueValue      TypeToken = "opaque-value"       // any msgpack value
	OpaqueValueArray TypeToken = "opaque-value-array" // msgpack array
	Void             TypeToken = "void"               // zero arguments, only ever alone
)

// Spellings used by the hand-written C++ tables, accepted on input.
var tokenAliases = map[string]TypeToken{
	"int":                   Integer,
	"std::string":           Text,
	"msgpack::object":       OpaqueValue,
	"msgpack::object_array": OpaqueValueArray,
}

// ParseTypeToken resolves a canonical token or one of its C++ aliases.
func ParseTypeToken(s string) (TypeToken, bool) {
	switch t := TypeToken(s); t {
	case Integer, Text, OpaqueValue, OpaqueValueArray, Void:
		return t, true
	}
	t, ok := tokenAliases[s]
	return t, ok
}

func (t TypeToken) String() string { return string(t) }
