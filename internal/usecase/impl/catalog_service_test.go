package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	mockrepo "wander/internal/mocks/repository"
	"wander/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockrepo.MockPlaceRepository) {
	t.Helper()

	placeRepo := mockrepo.NewMockPlaceRepository(t)
	srv := NewCatalogService(CatalogServiceParams{
		PlaceRepo: placeRepo,
		Logger:    newTestLogger(),
	})

	return srv, placeRepo
}

func TestCatalogService_ListByCategory_UnknownCategory(t *testing.T) {
	t.Parallel()

	srv, _ := newCatalogService(t)

	places, err := srv.ListByCategory(context.Background(), "museos")
	require.Error(t, err)
	assert.Nil(t, places)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ListByCategory_Success(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)

	expected := []*entity.Place{
		{ID: "p1", Name: "Cafe del Centro", Category: entity.CategoryCoffeeShops},
		{ID: "p2", Name: "Cafe de la Plaza", Category: entity.CategoryCoffeeShops},
	}
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryCoffeeShops).Return(expected, nil).Once()

	places, err := srv.ListByCategory(context.Background(), "cafeterias")
	require.NoError(t, err)
	assert.Equal(t, expected, places)

	category, current := srv.Current()
	assert.Equal(t, entity.CategoryCoffeeShops, category)
	assert.Equal(t, expected, current)
}

func TestCatalogService_ListByCategory_EmptyResultIsNeverNil(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryBreweries).
		Return(nil, nil).Once()

	places, err := srv.ListByCategory(context.Background(), "cervecerias")
	require.NoError(t, err)
	require.NotNil(t, places)
	assert.Empty(t, places)
}

func TestCatalogService_ListByCategory_FetchErrorYieldsEmptyList(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryMountains).
		Return(nil, errors.New("deadline exceeded")).Once()

	places, err := srv.ListByCategory(context.Background(), "montanas")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFetchFailed))
	require.NotNil(t, places)
	assert.Empty(t, places)

	// The failed fetch replaced whatever was applied before.
	_, current := srv.Current()
	assert.Empty(t, current)
}

func TestCatalogService_Current_ReturnsACopy(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)

	places := []*entity.Place{
		{ID: "p1", Name: "Cafe del Centro", Category: entity.CategoryCoffeeShops},
		{ID: "p2", Name: "Cafe de la Plaza", Category: entity.CategoryCoffeeShops},
	}
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryCoffeeShops).Return(places, nil).Once()

	_, err := srv.ListByCategory(context.Background(), "cafeterias")
	require.NoError(t, err)

	// Mutating a returned slice must not reach the applied list.
	_, current := srv.Current()
	require.Len(t, current, 2)
	current[0] = nil

	_, again := srv.Current()
	require.Len(t, again, 2)
	require.NotNil(t, again[0])
	assert.Equal(t, "p1", again[0].ID)
}

func TestCatalogService_ListByCategory_StaleResultDiscarded(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	slowPlaces := []*entity.Place{{ID: "slow", Category: entity.CategoryCoffeeShops}}
	fastPlaces := []*entity.Place{{ID: "fast", Category: entity.CategoryMountains}}

	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryCoffeeShops).
		Run(func(mock.Arguments) {
			close(slowStarted)
			<-slowRelease
		}).
		Return(slowPlaces, nil).Once()
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryMountains).
		Return(fastPlaces, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)

	var slowResult []*entity.Place
	var slowErr error
	go func() {
		defer wg.Done()
		slowResult, slowErr = srv.ListByCategory(context.Background(), "cafeterias")
	}()

	// Issue the second request only after the first fetch is in flight,
	// then let the first fetch finish last.
	<-slowStarted
	fastResult, fastErr := srv.ListByCategory(context.Background(), "montanas")
	require.NoError(t, fastErr)
	assert.Equal(t, fastPlaces, fastResult)

	close(slowRelease)
	wg.Wait()

	// The older request's result arrived after the newer one and was
	// discarded: its caller observes the applied newer list.
	require.NoError(t, slowErr)
	assert.Equal(t, fastPlaces, slowResult)

	category, current := srv.Current()
	assert.Equal(t, entity.CategoryMountains, category)
	assert.Equal(t, fastPlaces, current)
}

func TestCatalogService_ListByCategory_StaleErrorDoesNotClobberAppliedList(t *testing.T) {
	t.Parallel()

	srv, placeRepo := newCatalogService(t)

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	fastPlaces := []*entity.Place{{ID: "fast", Category: entity.CategoryBreweries}}

	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryCoffeeShops).
		Run(func(mock.Arguments) {
			close(slowStarted)
			<-slowRelease
		}).
		Return(nil, errors.New("deadline exceeded")).Once()
	placeRepo.On("ListByCategory", mock.Anything, entity.CategoryBreweries).
		Return(fastPlaces, nil).Once()

	done := make(chan struct{})
	var slowErr error
	go func() {
		defer close(done)
		_, slowErr = srv.ListByCategory(context.Background(), "cafeterias")
	}()

	<-slowStarted
	_, err := srv.ListByCategory(context.Background(), "cervecerias")
	require.NoError(t, err)

	close(slowRelease)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stale request did not finish")
	}

	// The stale failure is silent and leaves the newer applied list alone.
	require.NoError(t, slowErr)
	category, current := srv.Current()
	assert.Equal(t, entity.CategoryBreweries, category)
	assert.Equal(t, fastPlaces, current)
}
