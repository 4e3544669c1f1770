package cpp

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/gnvim/signalgen/internal/codegen/meta"
	"github.com/gnvim/signalgen/internal/codegen/spec"
)

const declarationTemplate = `{{.Opts.Indent}}sigc::signal<{{signalArgs .Event}}> {{.Opts.Prefix}}{{.Event.Name}};`

var declarationTmpl = template.Must(template.New("declaration").Funcs(tplFuncs()).Parse(declarationTemplate))

type emitData struct {
	Opts      meta.Options
	Event     spec.EventSpec
	SkipFirst bool
}

// Declaration renders the signal member declared for e inside the bridge
// class, e.g. "    sigc::signal<void, int, int> nvim_resize;".
func Declaration(opts meta.Options, e spec.EventSpec) (string, error) {
	var b strings.Builder
	if err := declarationTmpl.Execute(&b, emitData{Opts: opts, Event: e}); err != nil {
		return "", fmt.Errorf("render declaration for %s: %w", e.Name, err)
	}
	return b.String(), nil
}
