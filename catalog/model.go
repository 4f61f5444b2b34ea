package catalog

// MovieCollection represents collection items response
type MovieCollection struct {
	Items []*MovieItem `json:"items"`
}

// MovieItem represents a collection item
type MovieItem struct {
	CreatedOn string     `json:"createdOn"`
	Local     *bool      `json:"local,omitempty"`
	FieldData *FieldData `json:"fieldData,omitempty"`
}

// FieldData holds movie attributes
type FieldData struct {
	Name             string `json:"name,omitempty"`
	Director         string `json:"director,omitempty"`
	Duration         string `json:"duration,omitempty"`
	Rating           string `json:"rating,omitempty"`
	CategoryID       string `json:"category,omitempty"`
	ShortDescription string `json:"short-description,omitempty"`
	Landscape        *Image `json:"thumbnail-landscape,omitempty"`
	Portrait         *Image `json:"thumbnail-portrait,omitempty"`
}

// Image references a remote image
type Image struct {
	URL string `json:"url"`
}

// ImageURLs returns thumbnail URLs of all items, skipping missing ones
func (c *MovieCollection) ImageURLs() []string {
	var ret []string
	for _, item := range c.Items {
		if item == nil || item.FieldData == nil {
			continue
		}
		for _, image := range []*Image{item.FieldData.Portrait, item.FieldData.Landscape} {
			if image != nil && image.URL != "" {
				ret = append(ret, image.URL)
			}
		}
	}
	return ret
}
