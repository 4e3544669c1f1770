package cpp

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gnvim/signalgen/internal/codegen/meta"
	"github.com/gnvim/signalgen/internal/codegen/spec"
)

// skipDiscriminator is passed to every adapter: nvim repeats the event name
// as the first element of each argument array.
const skipDiscriminator = true

const registrationTemplate = `{{.Opts.Indent}}{{.Opts.MapName}}.emplace ("{{.Event.Name}}",
{{.Opts.Indent}}{{.Opts.Indent}}MsgpackAdapter<{{adapterArgs .Event}}> ({{.Opts.Prefix}}{{.Event.Name}}, {{.SkipFirst}}));`

var registrationTmpl = template.Must(template.New("registration").Funcs(tplFuncs()).Parse(registrationTemplate))

// Registration renders the statement that maps e's wire name to an adapter
// bound to its declared signal.
func Registration(opts meta.Options, e spec.EventSpec) (string, error) {
	var b strings.Builder
	if err := registrationTmpl.Execute(&b, emitData{Opts: opts, Event: e, SkipFirst: skipDiscriminator}); err != nil {
		return "", fmt.Errorf("render registration for %s: %w", e.Name, err)
	}
	return b.String(), nil
}
