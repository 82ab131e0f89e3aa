package view

import (
	"github.com/samvad-hq/akhbar-tech/internal/ui"
)

// Icon renders a Font Awesome glyph.
func Icon(classes ...string) *ui.Node {
	return ui.El("i", ui.Attrs{"class": ui.Classes(append([]string{"fas"}, classes...)...)})
}

// postButton renders a one-button form posting to action.
func postButton(action, class, title string, children ...*ui.Node) *ui.Node {
	attrs := ui.Attrs{"type": "submit", "class": class}
	if title != "" {
		attrs["title"] = title
		attrs["aria-label"] = title
	}
	return ui.El("form", ui.Attrs{"method": "post", "action": action, "class": "inline-form"},
		ui.El("button", attrs, children...),
	)
}

// NavbarProps are the inputs of the navigation bar.
type NavbarProps struct {
	Dark       bool
	SearchOpen bool
}

// Navbar renders the sticky top bar with search, theme and menu controls.
func Navbar(p NavbarProps) *ui.Node {
	themeIcon := "fa-moon"
	if p.Dark {
		themeIcon = "fa-sun"
	}
	searchAction := PathSearchOpen
	if p.SearchOpen {
		searchAction = PathSearchClose
	}

	container := ui.El("div", ui.Attrs{"class": "container mx-auto px-4 py-4 flex justify-between items-center relative"},
		ui.El("h1", ui.Attrs{"class": "text-2xl font-bold text-gradient hover-lift"}, ui.Text(SiteTitle)),
		ui.El("div", ui.Attrs{"class": "flex items-center gap-4"},
			postButton(searchAction, "btn btn-primary hover-lift mr-4 hidden sm:inline-flex search-toggle", SearchLabel, Icon("fa-search")),
			postButton(PathTheme, "btn hover-lift theme-toggle", "", Icon(themeIcon)),
			postButton(PathSidebar, "btn hover-lift menu-toggle", "", Icon("fa-bars")),
		),
		ui.When(p.SearchOpen, SearchBox()),
	)

	return ui.El("nav", ui.Attrs{"class": "sticky top-0 bg-white dark:bg-gray-800 shadow-md z-50"}, container)
}

// SearchBox renders the open search popover. The search itself is decorative.
func SearchBox() *ui.Node {
	return ui.El("div", ui.Attrs{
		"class": "search-box absolute left-0 right-0 top-full mx-auto w-full max-w-md z-50 flex justify-center animate-fade-in",
		"dir":   "rtl",
	},
		ui.El("div", ui.Attrs{"class": "bg-white dark:bg-gray-900 rounded-xl shadow-lg p-4 mt-2 flex items-center gap-2 w-full"},
			ui.El("form", ui.Attrs{"role": "search", "class": "flex items-center gap-2 w-full"},
				ui.El("input", ui.Attrs{
					"type":        "text",
					"name":        "q",
					"class":       "w-full px-4 py-2 rounded-lg border border-gray-200 dark:border-gray-700 bg-gray-50 dark:bg-gray-800 outline-none",
					"placeholder": SearchHint,
					"autofocus":   "",
				}),
				ui.El("button", ui.Attrs{"type": "submit", "class": "btn btn-primary hover-lift"}, Icon("fa-search")),
			),
			postButton(PathSearchClose, "btn hover-lift search-close", CloseLabel, Icon("fa-times")),
		),
	)
}

// Sidebar renders the slide-in menu and its overlay.
func Sidebar(open bool) *ui.Node {
	state := ""
	if open {
		state = "open"
	}

	items := make([]*ui.Node, 0, len(sidebarItems))
	for _, item := range sidebarItems {
		items = append(items, ui.El("a", ui.Attrs{"href": PagePath(item.page), "class": "menu-item"},
			Icon(item.icon, "menu-icon"),
			ui.El("span", nil, ui.Text(item.text)),
		))
	}

	return ui.Fragment(
		ui.El("div", ui.Attrs{"class": ui.Classes("sidebar", state)},
			ui.El("div", ui.Attrs{"class": "py-4"}, items...),
		),
		postButton(PathSidebar, ui.Classes("sidebar-overlay", state), CloseLabel),
	)
}

// Hero renders the home page banner with its three waves.
func Hero() *ui.Node {
	waves := make([]*ui.Node, 0, 3)
	for i := 0; i < 3; i++ {
		waves = append(waves, ui.El("div", ui.Attrs{"class": "wave"},
			ui.El("svg", ui.Attrs{"xmlns": "http://www.w3.org/2000/svg", "viewBox": "0 0 1440 320"},
				ui.El("path", ui.Attrs{
					"fill":         "currentColor",
					"fill-opacity": "0.3",
					"d":            "M0,96L48,112C96,128,192,160,288,160C384,160,480,128,576,112C672,96,768,96,864,112C960,128,1056,160,1152,160C1248,160,1344,128,1392,112L1440,96L1440,320L0,320Z",
				}),
			),
		))
	}

	return ui.El("section", ui.Attrs{"class": "hero relative h-[400px] bg-gray-900 text-white wave-container"},
		ui.El("div", ui.Attrs{"class": "absolute inset-0 bg-black/50"}),
		ui.El("div", ui.Attrs{"class": "relative h-full flex flex-col items-center justify-center text-center"},
			ui.El("h2", ui.Attrs{"class": "text-5xl font-bold mb-4 text-gradient"}, ui.Text(SiteTitle)),
			ui.El("p", ui.Attrs{"class": "text-xl hover-lift"}, ui.Text(HeroSubtitle)),
		),
		ui.Fragment(waves...),
	)
}

// Footer renders the social links and copyright line.
func Footer() *ui.Node {
	links := make([]*ui.Node, 0, len(socialIcons))
	for _, icon := range socialIcons {
		links = append(links, ui.El("a", ui.Attrs{"href": "#", "class": "text-white hover:text-primary transition-colors"},
			ui.El("i", ui.Attrs{"class": "fab " + icon + " text-xl"}),
		))
	}

	return ui.El("footer", ui.Attrs{"class": "bg-gray-800 text-white py-8"},
		ui.El("div", ui.Attrs{"class": "container mx-auto px-4"},
			ui.El("div", ui.Attrs{"class": "flex flex-col md:flex-row justify-between items-center"},
				ui.El("div", ui.Attrs{"class": "flex gap-4 mb-4 md:mb-0"}, links...),
				ui.El("p", ui.Attrs{"class": "text-xs text-gray-400 mt-4 md:mt-0"}, ui.Text(Copyright)),
			),
		),
	)
}

// ErrorBanner renders a dismissible failure message.
func ErrorBanner(message string) *ui.Node {
	return ui.El("div", ui.Attrs{"class": "error-banner fixed top-4 right-4 bg-red-500 text-white px-6 py-3 rounded-lg shadow-lg z-50", "role": "alert"},
		ui.El("div", ui.Attrs{"class": "flex items-center gap-4"},
			ui.El("p", nil, ui.Text(message)),
			postButton(PathBannerDismiss, "text-white hover:text-gray-200 banner-close", CloseLabel, Icon("fa-times")),
		),
	)
}

// Spinner renders the loading indicator.
func Spinner() *ui.Node {
	return ui.El("div", ui.Attrs{"class": "loading-spinner flex justify-center items-center h-32"},
		ui.El("div", ui.Attrs{"class": "flex flex-col items-center"},
			ui.El("div", ui.Attrs{"class": "animate-spin rounded-full h-12 w-12 border-t-2 border-b-2 border-primary mb-4"}),
			ui.El("p", ui.Attrs{"class": "text-gray-600 dark:text-gray-400 loading-dots"}, ui.Text(LoadingText)),
		),
	)
}

// ScrollToTop renders the fixed jump-to-top control.
func ScrollToTop() *ui.Node {
	return ui.El("a", ui.Attrs{
		"href":       "#top",
		"class":      "scroll-top fixed bottom-8 left-8 bg-primary text-white p-3 rounded-full shadow-lg hover:bg-secondary z-50",
		"aria-label": "top",
	}, Icon("fa-arrow-up"))
}
