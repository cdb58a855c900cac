package installer

import (
	"bytes"
	"strings"
	"text/template"
)

// shimTemplate is the full body of the generated wrapper: a shebang line and
// one exec line. "$@" forwards every caller argument as a single opaque token,
// so word splitting and quoting survive the hop through the shell.
const shimTemplate = `#!/bin/sh
exec {{shq .Interpreter}} {{shq .EntryPath}} "$@"
`

var shimTmpl = template.Must(template.New("shim").Funcs(template.FuncMap{
	"shq": shellQuote,
}).Parse(shimTemplate))

type shimData struct {
	Interpreter string
	EntryPath   string
}

// renderShim produces the wrapper script body for the resolved interpreter
// and entry path.
func renderShim(interpreter, entryPath string) ([]byte, error) {
	var buf bytes.Buffer
	err := shimTmpl.Execute(&buf, shimData{Interpreter: interpreter, EntryPath: entryPath})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shellQuote wraps s in single quotes for POSIX sh, escaping embedded single
// quotes with the '\'' idiom. Single quotes suppress all other expansion, so
// the embedded paths reach the interpreter byte for byte.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
