package brokertime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
	"github.com/shamal-freight/SFB-LeadService/pkg/types"
)

func mustLabel(t *testing.T, s string) types.TimeLabel {
	t.Helper()
	label, err := types.ParseTimeLabel(s)
	require.NoError(t, err)
	return label
}

func TestViewerLocation(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{name: "empty means UTC", tz: ""},
		{name: "valid IANA zone", tz: "America/New_York"},
		{name: "broker zone", tz: "Asia/Riyadh"},
		{name: "unknown zone", tz: "Mars/Olympus", wantErr: true},
		{name: "garbage", tz: "not a zone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ViewerLocation(tt.tz)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimezone)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, loc)
			if tt.tz == "" {
				assert.Equal(t, time.UTC, loc)
			}
		})
	}
}

func TestConverter_ToViewer(t *testing.T) {
	converter := NewConverter(3)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		label     string
		viewerTZ  string
		wantLocal string
	}{
		// UTC: смещение ровно -3 часа от брокера
		{name: "morning label to UTC", label: "10:30 AM", viewerTZ: "", wantLocal: "7:30 AM"},
		{name: "evening label to UTC", label: "7:00 PM", viewerTZ: "", wantLocal: "4:00 PM"},

		// Нью-Йорк 2025-03-10 — EDT, UTC-4
		{name: "morning label to New York", label: "10:30 AM", viewerTZ: "America/New_York", wantLocal: "3:30 AM"},
		{name: "evening label to New York", label: "7:00 PM", viewerTZ: "America/New_York", wantLocal: "12:00 PM"},

		// Эр-Рияд совпадает с зоной брокера
		{name: "same zone is identity", label: "12:30 PM", viewerTZ: "Asia/Riyadh", wantLocal: "12:30 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer, err := ViewerLocation(tt.viewerTZ)
			require.NoError(t, err)

			local := converter.ToViewer(mustLabel(t, tt.label), date, viewer)
			assert.Equal(t, tt.wantLocal, local.String())
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	// Для зон с целочасовым смещением ToBroker(ToViewer(l)) == l
	converter := NewConverter(3)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	zones := []string{"", "Asia/Riyadh", "Asia/Dubai", "Europe/London", "America/New_York"}
	labels := []string{"10:30 AM", "11:30 AM", "12:30 PM", "5:00 PM", "6:00 PM", "7:00 PM"}

	for _, tz := range zones {
		viewer, err := ViewerLocation(tz)
		require.NoError(t, err)

		for _, s := range labels {
			label := mustLabel(t, s)
			local := converter.ToViewer(label, date, viewer)
			back := converter.ToBroker(local, date, viewer)
			assert.Equal(t, label.String(), back.String(), "zone=%q label=%s", tz, s)
		}
	}
}

func TestConverter_Instant(t *testing.T) {
	converter := NewConverter(3)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	instant := converter.Instant(mustLabel(t, "7:00 PM"), date)
	assert.Equal(t, time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC), instant.UTC())
}

func TestIsMorning(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{label: "12:00 AM", want: true},
		{label: "11:59 AM", want: true},
		{label: "12:00 PM", want: false},
		{label: "7:00 PM", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMorning(mustLabel(t, tt.label)))
		})
	}
}

func TestDaypart(t *testing.T) {
	assert.Equal(t, domain.GroupMorning, Daypart(mustLabel(t, "9:00 AM")))
	assert.Equal(t, domain.GroupEvening, Daypart(mustLabel(t, "12:00 PM")))
}
