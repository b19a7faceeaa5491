package playlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/playdeck/internal/domain/track"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		tracks  []track.Track
		wantErr error
	}{
		{
			name:    "empty playlist rejected",
			tracks:  []track.Track{},
			wantErr: ErrEmpty,
		},
		{
			name:    "nil playlist rejected",
			tracks:  nil,
			wantErr: ErrEmpty,
		},
		{
			name:   "single track",
			tracks: []track.Track{{ID: "track-1"}},
		},
		{
			name: "multiple tracks",
			tracks: []track.Track{
				{ID: "track-1"},
				{ID: "track-2"},
				{ID: "track-3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.tracks)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.tracks), p.Len())
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	tracks := []track.Track{{ID: "track-1"}, {ID: "track-2"}}
	p, err := New(tracks)
	require.NoError(t, err)

	tracks[0].ID = "mutated"
	assert.Equal(t, "track-1", p.TrackAt(0).ID)
}

func TestFromTitles(t *testing.T) {
	p, err := FromTitles([]string{"first", "second", "third"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"first", "second", "third"}, p.TrackIDs())
	assert.Equal(t, "second", p.TrackAt(1).Title)

	_, err = FromTitles(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPlaylist_TotalDuration(t *testing.T) {
	p, err := New([]track.Track{
		{ID: "track-1", Duration: 2 * time.Minute},
		{ID: "track-2", Duration: 3*time.Minute + 30*time.Second},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(330), p.TotalDuration())
}
