package cpp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnvim/signalgen/internal/codegen/meta"
	"github.com/gnvim/signalgen/internal/codegen/spec"
)

func TestDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		event    spec.EventSpec
		expected string
	}{
		{
			name:     "integers by value",
			event:    spec.Event("resize", spec.Integer, spec.Integer),
			expected: "    sigc::signal<void, int, int> nvim_resize;",
		},
		{
			name:     "void has no parameters",
			event:    spec.Event("clear", spec.Void),
			expected: "    sigc::signal<void> nvim_clear;",
		},
		{
			name:     "text by const reference",
			event:    spec.Event("set_title", spec.Text),
			expected: "    sigc::signal<void, const std::string &> nvim_set_title;",
		},
		{
			name:     "mixed",
			event:    spec.Event("popupmenu_show", spec.OpaqueValue, spec.Integer, spec.Integer, spec.Integer),
			expected: "    sigc::signal<void, const msgpack::object &, int, int, int> nvim_popupmenu_show;",
		},
		{
			name:     "object array",
			event:    spec.Event("put", spec.OpaqueValueArray),
			expected: "    sigc::signal<void, const msgpack::object_array &> nvim_put;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Declaration(meta.DefaultOptions(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name     string
		event    spec.EventSpec
		expected string
	}{
		{
			name:  "integers",
			event: spec.Event("resize", spec.Integer, spec.Integer),
			expected: "    redraw_adapters_.emplace (\"resize\",\n" +
				"        MsgpackAdapter<int, int> (nvim_resize, true));",
		},
		{
			name:  "void unpacks nothing",
			event: spec.Event("clear", spec.Void),
			expected: "    redraw_adapters_.emplace (\"clear\",\n" +
				"        MsgpackAdapter<void> (nvim_clear, true));",
		},
		{
			name:  "adapter args are value types",
			event: spec.Event("popupmenu_show", spec.OpaqueValue, spec.Integer, spec.Integer, spec.Integer),
			expected: "    redraw_adapters_.emplace (\"popupmenu_show\",\n" +
				"        MsgpackAdapter<msgpack::object, int, int, int> (nvim_popupmenu_show, true));",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Registration(meta.DefaultOptions(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt)
		})
	}
}

func TestEmittersHonourOptions(t *testing.T) {
	opts := meta.Options{Prefix: "ui_", MapName: "adapters", Indent: "\t"}
	e := spec.Event("mode_change", spec.Text)

	line, err := Declaration(opts, e)
	require.NoError(t, err)
	assert.Equal(t, "\tsigc::signal<void, const std::string &> ui_mode_change;", line)

	stmt, err := Registration(opts, e)
	require.NoError(t, err)
	assert.Equal(t, "\tadapters.emplace (\"mode_change\",\n\t\tMsgpackAdapter<std::string> (ui_mode_change, true));", stmt)
}

func TestTypeRenderingRule(t *testing.T) {
	for _, tok := range []spec.TypeToken{spec.Integer, spec.Text, spec.OpaqueValue, spec.OpaqueValueArray} {
		p, err := paramCppType(tok)
		require.NoError(t, err)
		isRef := strings.HasPrefix(p, "const ") && strings.HasSuffix(p, " &")
		assert.Equal(t, tok != spec.Integer, isRef, "token %s rendered %q", tok, p)
	}
}

func TestEveryRegistrationSkipsDiscriminator(t *testing.T) {
	for _, e := range spec.Redraw() {
		stmt, err := Registration(meta.DefaultOptions(), e)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stmt, ", true));"), stmt)
	}
}

func TestUnknownTokenFails(t *testing.T) {
	e := spec.EventSpec{Name: "scroll", Args: []spec.TypeToken{"float"}}

	_, err := Declaration(meta.DefaultOptions(), e)
	assert.ErrorContains(t, err, `no C++ type for token "float"`)

	_, err = Registration(meta.DefaultOptions(), e)
	assert.ErrorContains(t, err, `no C++ type for token "float"`)
}
