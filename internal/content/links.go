package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/rightclick/internal/menu"
)

//go:embed links.yaml
var linksYAML []byte

// link is a titled external resource.
type link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

type credits struct {
	Intro  string `yaml:"intro"`
	People []link `yaml:"people"`
}

type dialogLinks struct {
	First link `yaml:"first"`
	Band  link `yaml:"band"`
}

// linkBook is every external address referenced by the menus.
type linkBook struct {
	Save     string      `yaml:"save"`
	Credits  credits     `yaml:"credits"`
	Devices  []link      `yaml:"devices"`
	Why      string      `yaml:"why"`
	Sequence string      `yaml:"sequence"`
	Who      dialogLinks `yaml:"who"`
}

var links = mustLoadLinks(linksYAML)

func parseLinks(data []byte) (linkBook, error) {
	var book linkBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return linkBook{}, fmt.Errorf("decode links: %w", err)
	}
	if book.Save == "" {
		return linkBook{}, fmt.Errorf("decode links: save url missing")
	}
	if book.Credits.Intro == "" {
		return linkBook{}, fmt.Errorf("decode links: credits intro missing")
	}
	entries := append([]link{book.Who.First, book.Who.Band}, book.Credits.People...)
	entries = append(entries, book.Devices...)
	for _, l := range entries {
		if l.Title == "" || l.URL == "" {
			return linkBook{}, fmt.Errorf("decode links: incomplete entry %+v", l)
		}
	}
	return book, nil
}

func mustLoadLinks(data []byte) linkBook {
	book, err := parseLinks(data)
	if err != nil {
		panic(err)
	}
	return book
}

func linkItems(entries []link) []menu.Item {
	items := make([]menu.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, menu.Link(entry.Title, entry.URL))
	}
	return items
}
