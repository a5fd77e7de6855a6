package kb

// Section is a named grouping of items backed by one data file.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	File  string `json:"file"`
}

// Item is one knowledge entry.
type Item struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Resources []Resource `json:"resources"`
}

// Resource types that can be previewed inline.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceAudio = "audio"
	ResourceLink  = "link"
)

// Resource is a media or document attachment of an item.
type Resource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Note  string `json:"note"`
	Path  string `json:"path"`
}

// Kind returns the resource type, "link" when unset.
func (r Resource) Kind() string {
	if r.Type == "" {
		return ResourceLink
	}
	return r.Type
}

// Previewable reports whether the resource is an image, video or audio file.
func (r Resource) Previewable() bool {
	switch r.Kind() {
	case ResourceImage, ResourceVideo, ResourceAudio:
		return true
	}
	return false
}

// DisplayTitle returns the title or a generic label.
func (r Resource) DisplayTitle() string {
	if r.Title == "" {
		return "Recurso"
	}
	return r.Title
}

// FAQEntry is one question of the FAQ collection.
type FAQEntry struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Library is the loaded, immutable knowledge base.
type Library struct {
	Sections []Section
	Items    map[string][]Item
}

// Section returns the section with the given id.
func (l *Library) Section(id string) (Section, bool) {
	if l == nil {
		return Section{}, false
	}
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ItemsFor returns the items of a section, nil for unknown ids.
func (l *Library) ItemsFor(id string) []Item {
	if l == nil {
		return nil
	}
	return l.Items[id]
}

// Count returns the number of items in a section.
func (l *Library) Count(id string) int {
	return len(l.ItemsFor(id))
}
