package scaffold

// Project-level file templates rendered at init and sync.

// InputCSS is the Tailwind entry stylesheet. The daisy style pulls in the
// daisyUI plugin; vanilla is plain Tailwind directives.
const InputCSS = `@tailwind base;
@tailwind components;
@tailwind utilities;
{{if eq .Style "daisy"}}
@plugin "daisyui" {
  themes: {{.Theme}} --default;
}
{{end}}`

// AppEntry is the application entry point scaffolded for new projects: a
// minimal net/http server that renders installed components and serves
// the built stylesheet.
const AppEntry = `package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
)

func main() {
	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<!doctype html><html data-theme=\"{{.Theme}}\"><head>")
		fmt.Fprint(w, "<link rel=\"stylesheet\" href=\"/{{.CSSPath}}\">")
		fmt.Fprint(w, "</head><body>")
		page().Render(r.Context(), w)
		fmt.Fprint(w, "</body></html>")
	})

	addr := "{{.Host}}:{{.Port}}"
	log.Printf("listening on http://%s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// page composes the UI. Components added with 'petal add' live in the
// {{.Package}} package; import and use them here.
func page() templ.Component {
	return templ.Raw("<main class=\"p-8\"><h1 class=\"text-3xl font-bold\">{{.Project}}</h1></main>")
}
`
