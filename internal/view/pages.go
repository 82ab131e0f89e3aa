package view

import (
	"github.com/samvad-hq/akhbar-tech/internal/ui"
)

const inputClass = "w-full px-4 py-2 border rounded-lg focus:ring-2 focus:ring-primary focus:border-primary dark:bg-gray-700 dark:border-gray-600"

// NewsPage renders the advanced search and newsletter panels. Neither form is wired.
func NewsPage() *ui.Node {
	fields := make([]*ui.Node, 0, len(searchFields)+1)
	for _, f := range searchFields {
		fields = append(fields, field(f, "block text-sm font-bold mb-2", inputClass,
			"absolute left-3 top-1/2 transform -translate-y-1/2 text-gray-400"))
	}
	fields = append(fields, ui.El("button", ui.Attrs{"type": "submit", "class": "btn btn-primary hover-lift"},
		Icon("fa-search", "ml-2"), ui.Text(SearchLabel)))

	search := ui.El("div", ui.Attrs{"class": "advanced-search mb-8 bg-white dark:bg-gray-800 rounded-lg shadow-lg p-6"},
		ui.El("h3", ui.Attrs{"class": "text-xl font-bold mb-4 text-gradient"}, ui.Text(AdvancedSearch)),
		ui.El("form", ui.Attrs{"class": "grid-form grid grid-cols-1 md:grid-cols-3 gap-4", "onsubmit": "return false"}, fields...),
	)

	newsletter := ui.El("div", ui.Attrs{"class": "newsletter mb-8 bg-white dark:bg-gray-800 rounded-lg shadow-lg p-6"},
		ui.El("h3", ui.Attrs{"class": "text-xl font-bold mb-4 text-gradient"}, ui.Text(NewsletterTitle)),
		ui.El("form", ui.Attrs{"class": "flex flex-col md:flex-row gap-4", "onsubmit": "return false"},
			ui.El("input", ui.Attrs{
				"type":        "email",
				"name":        "email",
				"placeholder": NewsletterHint,
				"class":       "flex-1 px-4 py-2 border rounded-lg focus:ring-2 focus:ring-primary focus:border-primary dark:bg-gray-700 dark:border-gray-600",
				"required":    "",
			}),
			ui.El("button", ui.Attrs{"type": "submit", "class": "btn btn-primary hover-lift"},
				Icon("fa-paper-plane", "ml-2"), ui.Text(SubscribeLabel)),
		),
	)

	return ui.El("div", ui.Attrs{"class": "news-page container mx-auto px-4 py-8"}, search, newsletter)
}

// AboutPage renders the static "about us" panel.
func AboutPage() *ui.Node {
	features := make([]*ui.Node, 0, len(aboutFeatures))
	for _, f := range aboutFeatures {
		features = append(features, ui.El("div", ui.Attrs{"class": "flex items-center gap-3"},
			Icon(f.icon, "text-primary", "text-xl"),
			ui.El("span", nil, ui.Text(f.text)),
		))
	}

	return ui.El("div", ui.Attrs{"class": "about-page container mx-auto px-4 py-8"},
		ui.El("div", ui.Attrs{"class": "max-w-3xl mx-auto bg-white dark:bg-gray-800 rounded-lg shadow-lg p-8"},
			ui.El("h2", ui.Attrs{"class": "text-3xl font-bold mb-6"}, ui.Text(AboutTitle)),
			ui.El("p", ui.Attrs{"class": "text-gray-700 dark:text-gray-300 mb-4 leading-relaxed"}, ui.Text(AboutBody)),
			ui.El("div", ui.Attrs{"class": "grid grid-cols-1 md:grid-cols-2 gap-6 mt-8"}, features...),
		),
	)
}

// ContactPage renders the decorative contact form.
func ContactPage() *ui.Node {
	fields := make([]*ui.Node, 0, len(contactFields)+1)
	for _, f := range contactFields {
		fields = append(fields, field(f, "", "", "input-icon"))
	}
	fields = append(fields, ui.El("button", ui.Attrs{"type": "submit"},
		Icon("fa-paper-plane", "ml-2"), ui.Text(SendMessage)))

	return ui.El("div", ui.Attrs{"class": "contact-page container mx-auto px-4 py-8"},
		ui.El("div", ui.Attrs{"class": "contact-form"},
			ui.El("h2", ui.Attrs{"class": "text-3xl font-bold mb-6 text-gradient"}, ui.Text(ContactTitle)),
			ui.El("form", ui.Attrs{"class": "flex flex-col gap-4 relative", "onsubmit": "return false"}, fields...),
		),
	)
}

func field(f formField, labelClass, controlClass, iconClass string) *ui.Node {
	attrs := ui.Attrs{"name": f.name, "id": "field-" + f.name}
	if controlClass != "" {
		attrs["class"] = controlClass
	}

	var control *ui.Node
	switch f.typ {
	case "textarea":
		attrs["required"] = ""
		control = ui.El("textarea", attrs)
	case "select":
		opts := make([]*ui.Node, 0, len(f.options))
		for _, o := range f.options {
			opts = append(opts, ui.El("option", ui.Attrs{"value": o}, ui.Text(o)))
		}
		control = ui.El("select", attrs, opts...)
	default:
		attrs["type"] = f.typ
		if labelClass == "" {
			attrs["required"] = ""
		}
		control = ui.El("input", attrs)
	}

	labelAttrs := ui.Attrs{"for": "field-" + f.name}
	if labelClass != "" {
		labelAttrs["class"] = labelClass
	}
	return ui.El("div", ui.Attrs{"class": "relative"},
		ui.El("label", labelAttrs, ui.Text(f.label)),
		control,
		ui.El("i", ui.Attrs{"class": ui.Classes("fas", f.icon, iconClass)}),
	)
}
