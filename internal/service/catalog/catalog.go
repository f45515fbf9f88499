// Package catalog holds the static festival data and the notification
// templates the scheduler draws from. The default catalog is embedded; a YAML
// file with the same shape can replace it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

const pinAlertNamePlaceholder = "{name}"

type Template struct {
	Text     string          `yaml:"text"`
	Category domain.Category `yaml:"category"`
	Icon     domain.Icon     `yaml:"icon"`
}

type Proximity struct {
	Food     Template `yaml:"food"`
	Restroom Template `yaml:"restroom"`
}

type Catalog struct {
	Festivals []domain.Festival `yaml:"festivals"`
	Ambient   []Template        `yaml:"ambient"`
	Proximity Proximity         `yaml:"proximity"`
	PinAlert  Template          `yaml:"pin_alert"`

	performers map[int]domain.Performer
}

func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.performers = make(map[int]domain.Performer)
	for _, f := range c.Festivals {
		for _, p := range f.Performers {
			if _, exists := c.performers[p.ID]; exists {
				return nil, fmt.Errorf("%w: %d", ErrDuplicatePerformer, p.ID)
			}
			c.performers[p.ID] = p
		}
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Festivals) == 0 {
		return ErrNoFestivals
	}
	if len(c.Ambient) == 0 {
		return ErrNoAmbientTemplates
	}

	for i, t := range c.Ambient {
		if t.Text == "" || !t.Category.IsAmbient() {
			return fmt.Errorf("%w: ambient[%d] category %q", ErrInvalidTemplate, i, t.Category)
		}
	}

	checks := map[string]Template{
		"proximity.food":     c.Proximity.Food,
		"proximity.restroom": c.Proximity.Restroom,
		"pin_alert":          c.PinAlert,
	}
	for name, t := range checks {
		if t.Text == "" || !t.Category.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidTemplate, name)
		}
	}

	return nil
}

func (c *Catalog) Festival(id int) (domain.Festival, error) {
	for _, f := range c.Festivals {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.Festival{}, fmt.Errorf("%w: %d", domain.ErrFestivalNotFound, id)
}

func (c *Catalog) Performer(id int) (domain.Performer, error) {
	p, ok := c.performers[id]
	if !ok {
		return domain.Performer{}, fmt.Errorf("%w: %d", domain.ErrPerformerNotFound, id)
	}
	return p, nil
}

// Nearest returns the festival with the smallest advertised distance.
// Distances are static catalog values; there is no geolocation.
func (c *Catalog) Nearest() (domain.Festival, error) {
	var (
		nearest domain.Festival
		best    float64
		found   bool
	)
	for _, f := range c.Festivals {
		miles, ok := f.DistanceMiles()
		if !ok {
			continue
		}
		if !found || miles < best {
			nearest, best, found = f, miles, true
		}
	}
	if !found {
		return domain.Festival{}, ErrNoMeasurableFestival
	}
	return nearest, nil
}

func (c *Catalog) PinAlertText(performerName string) string {
	return strings.ReplaceAll(c.PinAlert.Text, pinAlertNamePlaceholder, performerName)
}
