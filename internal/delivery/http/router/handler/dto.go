package handler

import (
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"

	"github.com/paulmach/orb"
)

// --- Response models ---

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Address     string            `json:"address,omitempty"`
	Category    string            `json:"category"`
	Location    *locationResponse `json:"location,omitempty"`
	Hours       map[string]string `json:"hours,omitempty"`
}

func newPlaceResponse(place *entity.Place) *placeResponse {
	resp := &placeResponse{
		ID:          place.ID,
		Name:        place.Name,
		Description: place.Description,
		Address:     place.Address,
		Category:    place.Category.String(),
		Hours:       place.Hours,
	}
	if place.Location != nil {
		resp.Location = &locationResponse{
			Lat: place.Location.Lat(),
			Lng: place.Location.Lon(),
		}
	}

	return resp
}

func newPlaceListResponse(places []*entity.Place) []*placeResponse {
	out := make([]*placeResponse, 0, len(places))
	for _, place := range places {
		out = append(out, newPlaceResponse(place))
	}

	return out
}

type profileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

func newProfileResponse(profile *entity.UserProfile) *profileResponse {
	return &profileResponse{
		ID:       profile.ID,
		Email:    profile.Email,
		Username: profile.Username,
		Age:      profile.Age,
		PhotoURL: profile.PhotoURL,
	}
}

type identityResponse struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func newIdentityResponse(identity *entity.Identity) *identityResponse {
	return &identityResponse{
		UID:          identity.UID,
		Email:        identity.Email,
		IDToken:      identity.IDToken,
		RefreshToken: identity.RefreshToken,
		ExpiresAt:    identity.ExpiresAt,
	}
}

type sessionResponse struct {
	State    string            `json:"state"`
	Identity *identityResponse `json:"identity,omitempty"`
	Profile  *profileResponse  `json:"profile,omitempty"`
}

func newSessionResponse(session entity.Session) *sessionResponse {
	resp := &sessionResponse{State: string(session.State)}
	if session.Identity != nil {
		resp.Identity = newIdentityResponse(session.Identity)
	}
	if session.Profile != nil {
		resp.Profile = newProfileResponse(session.Profile)
	}

	return resp
}

type favoriteResponse struct {
	PlaceID string         `json:"placeId"`
	Place   *placeResponse `json:"place"`
}

func newFavoriteListResponse(entries []*entity.FavoriteEntry) []*favoriteResponse {
	out := make([]*favoriteResponse, 0, len(entries))
	for _, entry := range entries {
		resp := &favoriteResponse{PlaceID: entry.PlaceID}
		if entry.Place != nil {
			resp.Place = newPlaceResponse(entry.Place)
		}
		out = append(out, resp)
	}

	return out
}

// --- Request models ---

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// placeRequest carries the place snapshot a client submits when adding a
// favorite.
type placeRequest struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Address     string            `json:"address"`
	Category    string            `json:"category" validate:"required"`
	Location    *locationRequest  `json:"location"`
	Hours       map[string]string `json:"hours"`
}

func (r *placeRequest) toEntity() (*entity.Place, error) {
	category, err := entity.ParseCategory(r.Category)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	place := &entity.Place{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Category:    category,
		Hours:       r.Hours,
	}
	if r.Location != nil {
		point := orb.Point{r.Location.Lng, r.Location.Lat}
		place.Location = &point
	}

	return place, nil
}
