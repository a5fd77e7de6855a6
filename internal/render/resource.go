package render

import (
	"net/url"
	"strings"

	"github.com/gravitrone/kbase/internal/kb"
)

// Resource action kinds.
const (
	ActionPreview  = "preview"
	ActionOpen     = "open"
	ActionDownload = "download"
	ActionCopyLink = "copylink"
)

// Action is one button shown next to a resource.
type Action struct {
	Kind  string
	Label string
	Href  string
}

// PreviewLabel returns the preview button text for a media type, "" otherwise.
func PreviewLabel(kind string) string {
	switch kind {
	case kb.ResourceImage:
		return "👁 Ver"
	case kb.ResourceVideo:
		return "🎥 Ver"
	case kb.ResourceAudio:
		return "🎧 Reproducir"
	}
	return ""
}

// Actions lists the actions of a resource. Media gets a preview, anything else
// an external open link; a non-empty path adds download and copy-link.
func Actions(r kb.Resource, link LinkFunc) []Action {
	if link == nil {
		link = PlainLink
	}
	var out []Action
	if r.Previewable() {
		out = append(out, Action{Kind: ActionPreview, Label: PreviewLabel(r.Kind()), Href: PreviewHref(r)})
	} else {
		out = append(out, Action{Kind: ActionOpen, Label: "🔗 Abrir", Href: link(r.Path)})
	}
	if r.Path != "" {
		out = append(out,
			Action{Kind: ActionDownload, Label: "⬇ Descargar", Href: link(r.Path)},
			Action{Kind: ActionCopyLink, Label: "📎 Copiar link", Href: link(r.Path)},
		)
	}
	return out
}

// ResourceMeta is the "TYPE • note" line under a resource title.
func ResourceMeta(r kb.Resource) string {
	meta := strings.ToUpper(r.Kind())
	if r.Note != "" {
		meta += " • " + r.Note
	}
	return meta
}

// PreviewHref is the server route that renders the preview fragment.
func PreviewHref(r kb.Resource) string {
	v := url.Values{}
	v.Set("type", r.Kind())
	v.Set("path", r.Path)
	v.Set("title", r.DisplayTitle())
	return "/preview?" + v.Encode()
}

// NoPreview is shown for resources that cannot be previewed inline.
const NoPreview = "No hay previsualización para este recurso."
