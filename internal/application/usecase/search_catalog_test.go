package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/tripbook/internal/application/usecase"
	"github.com/bnema/tripbook/internal/domain/entity"
	repomocks "github.com/bnema/tripbook/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func vehicleItem(id int64, plate string, favorite bool) *entity.CatalogItem {
	item := entity.Vehicle{ID: id, Plate: plate, Favorite: favorite}.CatalogItem()
	item.ID = entity.CatalogItemID(id)
	return item
}

func TestSearchCatalogUseCase_Search_EmptyQuerySkipsRepository(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockCatalogRepository(t)

	uc := usecase.NewSearchCatalogUseCase(repo, 0)

	results, err := uc.Search(ctx, entity.CategoryVehicle, "  ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchCatalogUseCase_Search_ClassifiesKinds(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockCatalogRepository(t)

	exact := vehicleItem(1, "12", false)
	fav := vehicleItem(2, "12가3456", true)
	other := vehicleItem(3, "512다1111", false)
	unrelatedFav := vehicleItem(4, "99라0000", true)

	repo.EXPECT().Search(mock.Anything, entity.CategoryVehicle, "12", 20).
		Return([]*entity.CatalogItem{other, fav, exact}, nil)
	repo.EXPECT().Favorites(mock.Anything, entity.CategoryVehicle).
		Return([]*entity.CatalogItem{unrelatedFav, fav}, nil)

	uc := usecase.NewSearchCatalogUseCase(repo, 20)

	results, err := uc.Search(ctx, entity.CategoryVehicle, "12")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "12", results[0].Value)
	assert.Equal(t, entity.KindExact, results[0].Kind)
	assert.Equal(t, "12가3456", results[1].Value)
	assert.Equal(t, entity.KindFavorite, results[1].Kind)
	assert.Equal(t, "512다1111", results[2].Value)
	assert.Equal(t, entity.KindSearch, results[2].Kind)

	assert.Equal(t, "exact:vehicle:1", results[0].ID)
	assert.Equal(t, "1", results[0].Meta(entity.MetaVehicleID))
}

func TestSearchCatalogUseCase_Search_ExactIsCaseInsensitive(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockCatalogRepository(t)

	depot := entity.Location{ID: 7, Name: "Central Depot"}.CatalogItem()
	depot.ID = 7

	repo.EXPECT().Search(mock.Anything, entity.CategoryLocation, "central depot", mock.Anything).
		Return([]*entity.CatalogItem{depot}, nil)
	repo.EXPECT().Favorites(mock.Anything, entity.CategoryLocation).Return(nil, nil)

	uc := usecase.NewSearchCatalogUseCase(repo, 0)

	results, err := uc.Search(ctx, entity.CategoryLocation, "central depot")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.KindExact, results[0].Kind)
}

func TestSearchCatalogUseCase_Search_RepositoryErrorPropagates(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockCatalogRepository(t)

	repo.EXPECT().Search(mock.Anything, entity.CategoryDriver, "kim", mock.Anything).
		Return(nil, errors.New("connection reset"))
	repo.EXPECT().Favorites(mock.Anything, entity.CategoryDriver).Return(nil, nil).Maybe()

	uc := usecase.NewSearchCatalogUseCase(repo, 0)

	_, err := uc.Search(ctx, entity.CategoryDriver, "kim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search catalog")
}

func TestSearchCatalogUseCase_Favorites(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockCatalogRepository(t)

	repo.EXPECT().Favorites(mock.Anything, entity.CategoryVehicle).
		Return([]*entity.CatalogItem{vehicleItem(1, "A", true), vehicleItem(2, "B", true)}, nil)

	uc := usecase.NewSearchCatalogUseCase(repo, 0)

	results, err := uc.Favorites(ctx, entity.CategoryVehicle)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, entity.KindFavorite, r.Kind)
	}
	assert.Equal(t, "A", results[0].Value)
}

func TestSearchCatalogUseCase_Register(t *testing.T) {
	ctx := testContext()

	t.Run("defaults label to value", func(t *testing.T) {
		repo := repomocks.NewMockCatalogRepository(t)
		repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(item *entity.CatalogItem) bool {
			return item.Value == "Incheon" && item.Label == "Incheon"
		})).Return(nil)

		uc := usecase.NewSearchCatalogUseCase(repo, 0)
		err := uc.Register(ctx, &entity.CatalogItem{Category: entity.CategoryLocation, Value: " Incheon "})
		require.NoError(t, err)
	})

	t.Run("rejects general category", func(t *testing.T) {
		repo := repomocks.NewMockCatalogRepository(t)

		uc := usecase.NewSearchCatalogUseCase(repo, 0)
		err := uc.Register(ctx, &entity.CatalogItem{Category: entity.CategoryGeneral, Value: "x"})
		require.ErrorIs(t, err, entity.ErrUnknownCategory)
	})

	t.Run("rejects blank value", func(t *testing.T) {
		repo := repomocks.NewMockCatalogRepository(t)

		uc := usecase.NewSearchCatalogUseCase(repo, 0)
		require.Error(t, uc.Register(ctx, &entity.CatalogItem{Category: entity.CategoryDriver}))
	})
}
