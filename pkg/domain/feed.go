package domain

// DefaultCategory is used for sources registered without a category
const DefaultCategory = "general"

// Source represents one syndication endpoint of the feed catalog
type Source struct {
	Name     string `json:"name" yaml:"name"`
	URL      string `json:"url" yaml:"url"`
	Category string `json:"category" yaml:"category"`
}

// Identifier returns a human-readable identifier for the source
func (s Source) Identifier() string {
	if s.Name != "" {
		return s.Name
	}
	return s.URL
}
