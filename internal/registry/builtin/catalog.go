// Package builtin ships the component and block catalog bundled with
// petal. Install registers every definition into an explicitly provided
// registry; nothing here runs at import time.
package builtin

import (
	"github.com/a-h/templ"

	"github.com/petal-dev/petal/internal/registry"
)

const author = "petal"

// Install registers the bundled catalog into reg. It errors on the first
// failed registration, which only happens on an authoring mistake such as
// two definitions sharing a name.
func Install(reg *registry.Registry) error {
	for _, def := range catalog() {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func catalog() []*registry.Definition {
	return []*registry.Definition{
		registry.NewDefinition("button", registry.KindComponent).
			WithDescription("A versatile button with color, style, size and shape variants").
			WithAuthor(author).
			WithCategories("actions").
			WithFile("button.go", buttonSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<button class="btn btn-primary">Button</button>`)
			}),

		registry.NewDefinition("card", registry.KindComponent).
			WithDescription("A content card with optional title and actions").
			WithAuthor(author).
			WithCategories("data-display").
			WithFile("card.go", cardSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<div class="card bg-base-100 shadow-sm"><div class="card-body"><h2 class="card-title">Card</h2><p>Card content.</p></div></div>`)
			}),

		registry.NewDefinition("badge", registry.KindComponent).
			WithDescription("A small status badge").
			WithAuthor(author).
			WithCategories("data-display").
			WithFile("badge.go", badgeSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<span class="badge badge-accent">badge</span>`)
			}),

		registry.NewDefinition("alert", registry.KindComponent).
			WithDescription("An inline alert for feedback messages").
			WithAuthor(author).
			WithCategories("data-display", "feedback").
			WithFile("alert.go", alertSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<div role="alert" class="alert alert-info"><span>Something happened.</span></div>`)
			}),

		registry.NewDefinition("input", registry.KindComponent).
			WithDescription("A text input with label and validation states").
			WithAuthor(author).
			WithCategories("data-input").
			WithFile("input.go", inputSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<input type="text" placeholder="Type here" class="input input-bordered"/>`)
			}),

		registry.NewDefinition("navbar", registry.KindComponent).
			WithDescription("A top navigation bar").
			WithAuthor(author).
			WithCategories("navigation").
			WithFile("navbar.go", navbarSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<div class="navbar bg-base-100"><a class="btn btn-ghost text-xl">petal</a></div>`)
			}),

		registry.NewDefinition("hero", registry.KindBlock).
			WithDescription("A landing page hero section").
			WithAuthor(author).
			WithCategories("layout", "marketing").
			WithDependencies("button").
			WithFile("hero.go", heroSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<div class="hero min-h-screen bg-base-200"><div class="hero-content text-center"><div><h1 class="text-5xl font-bold">Hello there</h1><button class="btn btn-primary">Get Started</button></div></div></div>`)
			}),

		registry.NewDefinition("footer", registry.KindBlock).
			WithDescription("A page footer with link columns").
			WithAuthor(author).
			WithCategories("layout").
			WithFile("footer.go", footerSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<footer class="footer bg-neutral text-neutral-content p-10"><nav><h6 class="footer-title">Services</h6></nav></footer>`)
			}),

		registry.NewDefinition("dashboard", registry.KindBlock).
			WithDescription("A dashboard section composed of stat cards and a navbar").
			WithAuthor(author).
			WithCategories("layout").
			WithDependencies("navbar", "card").
			WithFile("dashboard.go", dashboardSource).
			WithRenderer(func() templ.Component {
				return templ.Raw(`<div class="stats shadow"><div class="stat"><div class="stat-title">Total Views</div><div class="stat-value">89,400</div></div></div>`)
			}),
	}
}
