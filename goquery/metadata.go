package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	gena "github.com/sunes26/Gena"
)

// Ensure MetadataReader implements gena.MetadataReader at compile time.
var _ gena.MetadataReader = (*MetadataReader)(nil)

// MetadataReader reads document-level descriptive tags from a snapshot.
type MetadataReader struct{}

// NewMetadataReader creates a new MetadataReader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// Read extracts metadata from the snapshot. Meta tags are visited in
// document order and later tags overwrite earlier assignments for the
// same field (last write wins). Tags missing a key or content are
// skipped. Metadata extraction is best effort and never fails: at
// minimum the URL, domain, and default language are populated.
func (r *MetadataReader) Read(snap *gena.Snapshot) gena.Metadata {
	md := gena.Metadata{
		URL:      snap.URL,
		Language: "unknown",
		Keywords: []string{},
	}
	if u, err := url.Parse(snap.URL); err == nil {
		md.Domain = u.Hostname()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return md
	}

	md.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if lang, ok := doc.Find("html").Attr("lang"); ok {
		if lang = strings.TrimSpace(lang); lang != "" {
			md.Language = lang
		}
	}

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("name")
		if key == "" {
			key, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		if key == "" || content == "" {
			return
		}

		switch strings.ToLower(key) {
		case "description", "og:description":
			md.Description = content
		case "author":
			md.Author = content
		case "keywords":
			parts := strings.Split(content, ",")
			keywords := make([]string, 0, len(parts))
			for _, p := range parts {
				keywords = append(keywords, strings.TrimSpace(p))
			}
			md.Keywords = keywords
		}
	})

	return md
}
