package catalog

import "strings"

// Hotel is one listing shown on the marketing site.
type Hotel struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Area        string   `json:"area"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Distance    string   `json:"distance"`
	Price       int      `json:"price"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// Catalog serves the static hotel listing dataset. There is no inventory or
// availability behind it; listings are read-only marketing content.
type Catalog struct {
	hotels []Hotel
}

// New builds a catalog over the given listings, or the default dataset when
// none are provided.
func New(hotels []Hotel) *Catalog {
	if hotels == nil {
		hotels = defaultHotels
	}
	return &Catalog{hotels: hotels}
}

// List returns hotels filtered by area slug and a free-text query over name
// and description. Empty filters match everything.
func (c *Catalog) List(area, query string) []Hotel {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Hotel, 0, len(c.hotels))
	for _, h := range c.hotels {
		if area != "" && h.Area != area {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(h.Name), query) &&
			!strings.Contains(strings.ToLower(h.Description), query) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Get returns the hotel with the given id.
func (c *Catalog) Get(id int) (Hotel, bool) {
	for _, h := range c.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return Hotel{}, false
}

var defaultHotels = []Hotel{
	{
		ID:          1,
		Name:        "The Oberoi Amarvilas",
		Area:        "taj_mahal",
		Image:       "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=500",
		Rating:      5,
		Reviews:     1250,
		Distance:    "0.6 km from Taj Mahal",
		Price:       25000,
		Amenities:   []string{"parking", "wifi", "restaurant"},
		Description: "Luxury hotel with breathtaking views of the Taj Mahal",
	},
	{
		ID:          2,
		Name:        "Taj Hotel & Convention Centre",
		Area:        "taj_mahal",
		Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=500",
		Rating:      4.5,
		Reviews:     980,
		Distance:    "1.2 km from Taj Mahal",
		Price:       15000,
		Amenities:   []string{"parking", "wifi", "restaurant"},
		Description: "Modern luxury hotel with rooftop pool",
	},
	{
		ID:          3,
		Name:        "Clarks Shiraz",
		Area:        "agra_fort",
		Image:       "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=500",
		Rating:      4.2,
		Reviews:     850,
		Distance:    "0.8 km from Agra Fort",
		Price:       12000,
		Amenities:   []string{"parking", "wifi", "restaurant"},
		Description: "Heritage hotel with fort views",
	},
	{
		ID:          4,
		Name:        "Crystal Sarovar Premiere",
		Area:        "agra_fort",
		Image:       "https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=500",
		Rating:      4.0,
		Reviews:     720,
		Distance:    "1.5 km from Agra Fort",
		Price:       8000,
		Amenities:   []string{"parking", "wifi", "restaurant"},
		Description: "Contemporary hotel with city views",
	},
	{
		ID:          5,
		Name:        "ITC Mughal",
		Area:        "fatehpur_sikri",
		Image:       "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=500",
		Rating:      4.8,
		Reviews:     1100,
		Distance:    "1.0 km from Fatehpur Sikri",
		Price:       18000,
		Amenities:   []string{"parking", "wifi", "restaurant"},
		Description: "Luxury resort with Mughal architecture",
	},
}
