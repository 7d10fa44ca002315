package timefmt

// TemplateHelpers exposes engine rendering to text/template and html/template.
//
//	{{ format_time "ISODate" .CreatedAt }}
//	{{ range time_formatters }}{{ . }} {{ end }}
//
// A nil engine uses the process-wide default engine.
func TemplateHelpers(e *Engine) map[string]any {
	engine := func() *Engine {
		if e != nil {
			return e
		}
		return Default()
	}

	return map[string]any{
		"format_time": func(pattern string, value any) (string, error) {
			return engine().Render(pattern, value)
		},
		"time_formatters": func() []string {
			return engine().Formatters()
		},
		"time_language": func() string {
			return engine().Language()
		},
	}
}
