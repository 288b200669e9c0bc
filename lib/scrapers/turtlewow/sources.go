package turtlewow

// Source describes an external database the importer can read from.
// Read-only discovery data for the API and CLI.
type Source struct {
	Name             string   `json:"name"`
	BaseURL          string   `json:"base_url"`
	SupportedFormats []string `json:"supported_formats"`
	ExampleURLs      []string `json:"example_urls"`
	Description      string   `json:"description"`
}

func Sources() []Source {
	return []Source{
		{
			Name:             "Turtle-WoW Database",
			BaseURL:          BaseURL,
			SupportedFormats: []string{"item", "spell"},
			ExampleURLs: []string{
				"https://database.turtle-wow.org/?item=12640",
				"https://database.turtle-wow.org/?spell=16729",
			},
			Description: "Community-maintained World of Warcraft database for the Turtle WoW private server",
		},
	}
}
