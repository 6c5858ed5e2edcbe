package catalog

// Category classifies a service into one of the five fixed service areas.
type Category string

const (
	CategoryAll         Category = "all" // CategoryAll is the filter wildcard, not a real category
	CategoryEducation   Category = "education"
	CategoryHealthcare  Category = "healthcare"
	CategoryAgriculture Category = "agriculture"
	CategoryTravel      Category = "travel"
	CategoryLiving      Category = "living"
)

// Categories lists the real service categories in display order.
var Categories = []Category{
	CategoryEducation,
	CategoryHealthcare,
	CategoryAgriculture,
	CategoryTravel,
	CategoryLiving,
}

// Valid reports whether c is one of the fixed categories. CategoryAll is
// accepted because it is valid as a filter input.
func (c Category) Valid() bool {
	if c == CategoryAll {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is an immutable catalog entry. Services are data-defined at build
// time and never created or mutated at runtime.
type Service struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Provider     string   `json:"provider"`
	Duration     string   `json:"duration"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	Videos       []Video  `json:"videos,omitempty"`
}

// HasVideos reports whether the service carries instructional videos.
func (s *Service) HasVideos() bool {
	return len(s.Videos) > 0
}

// Video is an instructional video nested under a service. The URL is an
// opaque third-party embed reference, passed through unmodified.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"` // display string such as "15:30", not machine time
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"videoUrl"`
	Category    string `json:"category"` // free-text sub-tag, independent of the service category
}
