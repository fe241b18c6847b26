package firestore

import (
	"testing"

	"wander/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		coordinates map[string]any
		want        *orb.Point
	}{
		{
			name:        "numeric values",
			coordinates: map[string]any{"lat": -33.45, "lng": -70.66},
			want:        &orb.Point{-70.66, -33.45},
		},
		{
			name:        "string values from older documents",
			coordinates: map[string]any{"lat": "-33.45", "lng": "-70.66"},
			want:        &orb.Point{-70.66, -33.45},
		},
		{
			name:        "mixed value types",
			coordinates: map[string]any{"lat": -33.45, "lng": "-70.66"},
			want:        &orb.Point{-70.66, -33.45},
		},
		{
			name:        "integer values",
			coordinates: map[string]any{"lat": int64(10), "lng": int64(20)},
			want:        &orb.Point{20, 10},
		},
		{
			name:        "missing map",
			coordinates: nil,
			want:        nil,
		},
		{
			name:        "missing longitude",
			coordinates: map[string]any{"lat": -33.45},
			want:        nil,
		},
		{
			name:        "unparseable string",
			coordinates: map[string]any{"lat": "north", "lng": "-70.66"},
			want:        nil,
		},
		{
			name:        "unsupported value type",
			coordinates: map[string]any{"lat": true, "lng": -70.66},
			want:        nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := parseLocation(tc.coordinates)
			if tc.want == nil {
				// Malformed coordinates are absent, never a zero point.
				assert.Nil(t, got)

				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tc.want.Lat(), got.Lat(), 1e-9)
			assert.InDelta(t, tc.want.Lon(), got.Lon(), 1e-9)
		})
	}
}

func TestPlaceDoc_RoundTripThroughSnapshot(t *testing.T) {
	t.Parallel()

	location := orb.Point{-70.66, -33.45}
	place := &entity.Place{
		ID:          "p1",
		Name:        "Cafe del Centro",
		Description: "Cafe de especialidad",
		Address:     "Calle Principal 123",
		Category:    entity.CategoryCoffeeShops,
		Location:    &location,
		Hours:       map[string]string{"lunes": "08:00-20:00"},
	}

	doc := encodePlace(place)
	assert.Equal(t, "cafeterias", doc.Category)
	assert.Equal(t, map[string]any{"lat": -33.45, "lng": -70.66}, doc.Coordinates)

	got := doc.toEntity("p1")
	assert.Equal(t, place, got)
}

func TestEncodePlace_WithoutLocation(t *testing.T) {
	t.Parallel()

	doc := encodePlace(&entity.Place{ID: "p2", Name: "Refugio", Category: entity.CategoryMountains})
	assert.Nil(t, doc.Coordinates)
	assert.Nil(t, doc.toEntity("p2").Location)
}
