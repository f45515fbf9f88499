package domain

// Category classifies a bubble notification by what produced it.
type Category string

const (
	CategoryGiveaway  Category = "giveaway"
	CategoryDelay     Category = "delay"
	CategoryDiscovery Category = "discovery"
	CategoryAlert     Category = "alert"
	CategoryLocation  Category = "location"
)

func (c Category) String() string {
	return string(c)
}

// IsAmbient reports whether the category is produced by the ambient generator.
func (c Category) IsAmbient() bool {
	switch c {
	case CategoryGiveaway, CategoryDelay, CategoryDiscovery:
		return true
	default:
		return false
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryGiveaway, CategoryDelay, CategoryDiscovery, CategoryAlert, CategoryLocation:
		return true
	default:
		return false
	}
}

// Icon selects a presentation glyph. It carries no behavior.
type Icon string

const (
	IconGift  Icon = "gift"
	IconClock Icon = "clock"
	IconMusic Icon = "music"
	IconBell  Icon = "bell"
	IconMap   Icon = "map"
)
