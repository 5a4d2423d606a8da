package gen

const eventListTmpl = `// Code generated by eventsgen - DO NOT EDIT.

package {{.PackageName}}
{{range .Contracts}}
// EventTypes{{.Name}} returns the event types for {{.Name}}
func EventTypes{{.Name}}() []string {
	return []string{
{{- range .EventNames}}
		"{{.}}",
{{- end}}
	}
}

// IsValid{{.Name}}EventName returns true if the name is an event of {{.Name}}
func IsValid{{.Name}}EventName(name string) bool {
	for _, eventName := range EventTypes{{.Name}}() {
		if name == eventName {
			return true
		}
	}
	return false
}
{{end}}`
