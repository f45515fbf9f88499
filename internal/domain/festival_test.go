package domain

import "testing"

func TestFestivalDistanceMiles(t *testing.T) {
	tests := []struct {
		distance string
		want     float64
		wantOK   bool
	}{
		{"2.1 miles", 2.1, true},
		{"0.8 miles", 0.8, true},
		{"  3 mi", 3, true},
		{"", 0, false},
		{"far away", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.distance, func(t *testing.T) {
			got, ok := Festival{Distance: tt.distance}.DistanceMiles()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("DistanceMiles() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFestivalPerformer(t *testing.T) {
	f := Festival{
		ID: 1,
		Performers: []Performer{
			{ID: 1, Name: "Sunset Vibes"},
			{ID: 2, Name: "Midnight Groove"},
		},
	}

	p, ok := f.Performer(2)
	if !ok || p.Name != "Midnight Groove" {
		t.Errorf("Performer(2) = %+v, %v", p, ok)
	}

	if _, ok := f.Performer(5); ok {
		t.Error("Performer(5) should not be found")
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		category Category
		ambient  bool
		valid    bool
	}{
		{CategoryGiveaway, true, true},
		{CategoryDelay, true, true},
		{CategoryDiscovery, true, true},
		{CategoryAlert, false, true},
		{CategoryLocation, false, true},
		{Category("weather"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if got := tt.category.IsAmbient(); got != tt.ambient {
				t.Errorf("IsAmbient() = %v, want %v", got, tt.ambient)
			}
			if got := tt.category.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
