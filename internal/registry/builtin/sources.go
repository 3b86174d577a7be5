package builtin

// Source templates for scaffolded files. Rendered by the scaffold package
// with scaffold.Context; the generated files belong to the user's project
// and import only the templ runtime.

const buttonSource = `// Code scaffolded by petal. Edit freely; petal will not overwrite this
// file unless you re-add the component with --force.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}}Props configures a {{.Component}}.
type {{.Component}}Props struct {
	Label    string
	Variant  string // neutral, primary, secondary, accent, info, success, warning, error
	Style    string // outline, soft, ghost, link, active
	Size     string // xs, sm, md, lg, xl
	Modifier string // wide, block, square, circle
	Disabled bool
}

func (p {{.Component}}Props) classes() string {
	cls := "btn"
	if p.Variant != "" {
		cls += " btn-" + p.Variant
	}
	if p.Style != "" {
		cls += " btn-" + p.Style
	}
	if p.Size != "" {
		cls += " btn-" + p.Size
	}
	if p.Modifier != "" {
		cls += " btn-" + p.Modifier
	}
	return cls
}

// {{.Component}} renders a daisyUI button.
func {{.Component}}(p {{.Component}}Props) templ.Component {
	attrs := ""
	if p.Disabled {
		attrs = " disabled"
	}
	return templ.Raw("<button class=\"" + p.classes() + "\"" + attrs + ">" + templ.EscapeString(p.Label) + "</button>")
}
`

const cardSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a daisyUI card with a title and body text.
func {{.Component}}(title, body string) templ.Component {
	return templ.Raw("<div class=\"card bg-base-100 shadow-sm\"><div class=\"card-body\">" +
		"<h2 class=\"card-title\">" + templ.EscapeString(title) + "</h2>" +
		"<p>" + templ.EscapeString(body) + "</p>" +
		"</div></div>")
}
`

const badgeSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a daisyUI badge. Variant may be empty or one of the
// daisyUI color names.
func {{.Component}}(label, variant string) templ.Component {
	cls := "badge"
	if variant != "" {
		cls += " badge-" + variant
	}
	return templ.Raw("<span class=\"" + cls + "\">" + templ.EscapeString(label) + "</span>")
}
`

const alertSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a daisyUI alert. Level is one of info, success, warning,
// error.
func {{.Component}}(level, message string) templ.Component {
	return templ.Raw("<div role=\"alert\" class=\"alert alert-" + level + "\"><span>" +
		templ.EscapeString(message) + "</span></div>")
}
`

const inputSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a bordered daisyUI text input.
func {{.Component}}(name, placeholder string) templ.Component {
	return templ.Raw("<input type=\"text\" name=\"" + templ.EscapeString(name) +
		"\" placeholder=\"" + templ.EscapeString(placeholder) +
		"\" class=\"input input-bordered w-full max-w-xs\"/>")
}
`

const navbarSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a daisyUI top navigation bar with a brand label.
func {{.Component}}(brand string) templ.Component {
	return templ.Raw("<div class=\"navbar bg-base-100\">" +
		"<a class=\"btn btn-ghost text-xl\">" + templ.EscapeString(brand) + "</a>" +
		"</div>")
}
`

const heroSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a full-height daisyUI hero section with a call to action.
func {{.Component}}(title, subtitle, cta string) templ.Component {
	return templ.Raw("<div class=\"hero min-h-screen bg-base-200\"><div class=\"hero-content text-center\"><div class=\"max-w-md\">" +
		"<h1 class=\"text-5xl font-bold\">" + templ.EscapeString(title) + "</h1>" +
		"<p class=\"py-6\">" + templ.EscapeString(subtitle) + "</p>" +
		"<button class=\"btn btn-primary\">" + templ.EscapeString(cta) + "</button>" +
		"</div></div></div>")
}
`

const footerSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// {{.Component}} renders a daisyUI footer with the given copyright line.
func {{.Component}}(copyright string) templ.Component {
	return templ.Raw("<footer class=\"footer footer-center bg-neutral text-neutral-content p-10\">" +
		"<aside><p>" + templ.EscapeString(copyright) + "</p></aside>" +
		"</footer>")
}
`

const dashboardSource = `// Code scaffolded by petal.
package {{.Package}}

import "github.com/a-h/templ"

// Stat is one dashboard statistic.
type Stat struct {
	Title string
	Value string
	Desc  string
}

// {{.Component}} renders a daisyUI stats section.
func {{.Component}}(stats []Stat) templ.Component {
	html := "<div class=\"stats stats-vertical lg:stats-horizontal shadow\">"
	for _, s := range stats {
		html += "<div class=\"stat\">" +
			"<div class=\"stat-title\">" + templ.EscapeString(s.Title) + "</div>" +
			"<div class=\"stat-value\">" + templ.EscapeString(s.Value) + "</div>" +
			"<div class=\"stat-desc\">" + templ.EscapeString(s.Desc) + "</div>" +
			"</div>"
	}
	html += "</div>"
	return templ.Raw(html)
}
`
