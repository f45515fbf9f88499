package domain

import (
	"testing"
	"time"
)

func TestIDSequenceNext(t *testing.T) {
	base := time.Date(2025, 8, 15, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		times []time.Time
		want  []int64
	}{
		{
			name:  "distinct milliseconds use the timestamp",
			times: []time.Time{base, base.Add(time.Second)},
			want:  []int64{base.UnixMilli(), base.Add(time.Second).UnixMilli()},
		},
		{
			name:  "same millisecond is bumped",
			times: []time.Time{base, base, base},
			want:  []int64{base.UnixMilli(), base.UnixMilli() + 1, base.UnixMilli() + 2},
		},
		{
			name:  "clock going backwards stays increasing",
			times: []time.Time{base, base.Add(-time.Minute)},
			want:  []int64{base.UnixMilli(), base.UnixMilli() + 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seq IDSequence
			for i, at := range tt.times {
				if got := seq.Next(at); got != tt.want[i] {
					t.Errorf("Next #%d = %d, want %d", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestNewNotificationNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)
	at := time.Date(2025, 8, 15, 12, 0, 0, 0, loc)

	n := NewNotification(1, "hello", CategoryGiveaway, IconGift, at)

	if n.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", n.CreatedAt.Location())
	}
	if !n.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want instant %v", n.CreatedAt, at)
	}
}
