package cpp

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gnvim/signalgen/internal/codegen/spec"
)

func tplFuncs() template.FuncMap {
	return template.FuncMap{
		"signalArgs":  signalArgs,
		"adapterArgs": adapterArgs,
	}
}

// cppType maps a token to the C++ type msgpack converts the argument into.
func cppType(t spec.TypeToken) (string, error) {
	switch t {
	case spec.Integer:
		return "int", nil
	case spec.Text:
		return "std::string", nil
	case spec.OpaqueValue:
		return "msgpack::object", nil
	case spec.OpaqueValueArray:
		return "msgpack::object_array", nil
	default:
		return "", fmt.Errorf("no C++ type for token %q", t)
	}
}

// paramCppType renders a callback parameter. Integers go by value, anything
// else by const reference.
func paramCppType(t spec.TypeToken) (string, error) {
	base, err := cppType(t)
	if err != nil {
		return "", err
	}
	if t == spec.Integer {
		return base, nil
	}
	return "const " + base + " &", nil
}

// signalArgs is the sigc::signal template argument list: the void return
// type followed by one parameter per argument.
func signalArgs(e spec.EventSpec) (string, error) {
	parts := []string{"void"}
	for _, t := range e.Params() {
		p, err := paramCppType(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", "), nil
}

// adapterArgs is the MsgpackAdapter template argument list. Adapters unpack
// into values, so no references here; a void event yields "void".
func adapterArgs(e spec.EventSpec) (string, error) {
	params := e.Params()
	if len(params) == 0 {
		return "void", nil
	}
	parts := make([]string, 0, len(params))
	for _, t := range params {
		p, err := cppType(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", "), nil
}
