package domain

import (
	"strconv"
	"strings"
)

type Performer struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Stage       string `json:"stage" yaml:"stage"`
	Time        string `json:"time" yaml:"time"`
	TimeLeft    string `json:"time_left" yaml:"time_left"`
	Genre       string `json:"genre" yaml:"genre"`
	Description string `json:"description" yaml:"description"`
}

type Festival struct {
	ID         int         `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Location   string      `json:"location" yaml:"location"`
	Distance   string      `json:"distance" yaml:"distance"`
	Date       string      `json:"date" yaml:"date"`
	Performers []Performer `json:"performers" yaml:"performers"`
}

// DistanceMiles parses the leading number of Distance ("2.1 miles" -> 2.1).
// The second return is false when no number can be read.
func (f Festival) DistanceMiles() (float64, bool) {
	fields := strings.Fields(f.Distance)
	if len(fields) == 0 {
		return 0, false
	}
	miles, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return miles, true
}

func (f Festival) Performer(id int) (Performer, bool) {
	for _, p := range f.Performers {
		if p.ID == id {
			return p, true
		}
	}
	return Performer{}, false
}
