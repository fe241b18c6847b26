package firestore

import (
	"encoding/json"
	"strconv"

	"wander/internal/domain/entity"

	"github.com/paulmach/orb"
)

// placeDoc mirrors the place document wire format. Field names are the
// store's, not translated.
type placeDoc struct {
	Name        string            `firestore:"nombre"`
	Description string            `firestore:"descripcion"`
	Address     string            `firestore:"direccion"`
	Category    string            `firestore:"categoria"`
	Coordinates map[string]any    `firestore:"coordenadas"`
	Hours       map[string]string `firestore:"horarios"`
}

// toEntity maps a document to the domain representation. A malformed or
// missing coordinate pair yields a nil location, never a zero point.
func (d *placeDoc) toEntity(id string) *entity.Place {
	return &entity.Place{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Address:     d.Address,
		Category:    entity.Category(d.Category),
		Location:    parseLocation(d.Coordinates),
		Hours:       d.Hours,
	}
}

// encodePlace maps a domain place back to the wire format, used when
// writing favorite snapshots.
func encodePlace(place *entity.Place) *placeDoc {
	doc := &placeDoc{
		Name:        place.Name,
		Description: place.Description,
		Address:     place.Address,
		Category:    place.Category.String(),
		Hours:       place.Hours,
	}
	if place.Location != nil {
		doc.Coordinates = map[string]any{
			"lat": place.Location.Lat(),
			"lng": place.Location.Lon(),
		}
	}

	return doc
}

// parseLocation reads a {lat, lng} map whose values may be stored as
// numbers or as numeric strings. Older documents carry strings.
func parseLocation(coordinates map[string]any) *orb.Point {
	if coordinates == nil {
		return nil
	}

	lat, ok := coordinateValue(coordinates["lat"])
	if !ok {
		return nil
	}
	lng, ok := coordinateValue(coordinates["lng"])
	if !ok {
		return nil
	}

	point := orb.Point{lng, lat}

	return &point
}

func coordinateValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)

		return f, err == nil
	default:
		return 0, false
	}
}
