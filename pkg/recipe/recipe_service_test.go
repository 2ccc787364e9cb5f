package recipe_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"recipe-api/domain"
	"recipe-api/entities"
	"recipe-api/internal/testutil"
	"recipe-api/internal/utils/storage"
	"recipe-api/pkg/query"
	"recipe-api/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const bucketURL = "https://bucket.test/"

type fakeS3 struct {
	uploaded  []string
	deleted   []string
	fail      bool
	deleteErr error
	onUpload  func()
}

func (f *fakeS3) UploadFile(_ context.Context, name string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	if f.fail {
		return "", errors.New("s3 unavailable")
	}
	key := folder + "/" + name
	f.uploaded = append(f.uploaded, key)
	if f.onUpload != nil {
		f.onUpload()
	}
	return key, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return f.deleteErr
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return bucketURL + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	key, _ := strings.CutPrefix(link, bucketURL)
	if key == link {
		return ""
	}
	return key
}

var _ storage.AwsS3 = (*fakeS3)(nil)

type fixture struct {
	db  *gorm.DB
	s3  *fakeS3
	svc recipe.RecipeService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewDB(t)
	s3 := &fakeS3{}
	return &fixture{
		db:  db,
		s3:  s3,
		svc: recipe.NewRecipeService(recipe.NewRecipeRepository(db), s3),
	}
}

func (f *fixture) category(t *testing.T, name string) uuid.UUID {
	c := entities.Category{ID: uuid.New(), Name: name}
	require.NoError(t, f.db.Create(&c).Error)
	return c.ID
}

func (f *fixture) ingredient(t *testing.T, name string) uuid.UUID {
	i := entities.Ingredient{ID: uuid.New(), Name: name}
	require.NoError(t, f.db.Create(&i).Error)
	return i.ID
}

func (f *fixture) countRecipes(t *testing.T) int64 {
	var n int64
	require.NoError(t, f.db.Model(&entities.Recipe{}).Count(&n).Error)
	return n
}

func (f *fixture) pairings(t *testing.T, recipeID string) []entities.RecipeIngredient {
	var rows []entities.RecipeIngredient
	require.NoError(t, f.db.Where("recipe_id = ?", recipeID).Find(&rows).Error)
	return rows
}

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dessert := f.category(t, "Dessert")
	sugar := f.ingredient(t, "Sugar")

	res, err := f.svc.Create(ctx, domain.RecipeRequest{
		Title:           "Brownie",
		PreparationTime: 15,
		CookTime:        30,
		Serving:         4,
		CategoryID:      dessert.String(),
		Ingredients:     []domain.RecipeIngredientRequest{{IngredientID: sugar.String(), Amount: "100g"}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Dessert", res.Category.Name)
	assert.Equal(t, []domain.RecipeIngredientResponse{{IngredientID: sugar.String(), Name: "Sugar", Amount: "100g"}}, res.Ingredients)

	_, err = f.svc.Create(ctx, domain.RecipeRequest{Title: "Brownie"})
	assert.ErrorIs(t, err, domain.ErrRecipeExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateRecipeWithoutCategory(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(context.Background(), domain.RecipeRequest{Title: "Plain Rice"})
	require.NoError(t, err)
	assert.Nil(t, res.Category)
	assert.Empty(t, res.Ingredients)
}

func TestCreateRecipeRollsBackOnMissingIngredient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sugar := f.ingredient(t, "Sugar")

	_, err := f.svc.Create(ctx, domain.RecipeRequest{
		Title: "Fudge",
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: sugar.String(), Amount: "1 cup"},
			{IngredientID: uuid.NewString(), Amount: "2 cups"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	assert.Zero(t, f.countRecipes(t))

	var n int64
	require.NoError(t, f.db.Model(&entities.RecipeIngredient{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateRecipeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.RecipeRequest
		want error
	}{
		{"blank title", domain.RecipeRequest{Title: "  "}, domain.ErrTitleRequired},
		{"negative cook time", domain.RecipeRequest{Title: "Soup", CookTime: -1}, domain.ErrNegativeNumeric},
		{"negative serving", domain.RecipeRequest{Title: "Soup", Serving: -2}, domain.ErrNegativeNumeric},
		{"bad category id", domain.RecipeRequest{Title: "Soup", CategoryID: "nope"}, domain.ErrParseUUID},
		{"missing category", domain.RecipeRequest{Title: "Soup", CategoryID: uuid.NewString()}, domain.ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, f.countRecipes(t))
}

func TestUpdateRecipeReplacesEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dessert := f.category(t, "Dessert")
	sugar := f.ingredient(t, "Sugar")
	salt := f.ingredient(t, "Salt")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{
		Title:       "Cookie",
		CategoryID:  dessert.String(),
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: sugar.String(), Amount: "50g"}},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID, domain.RecipeRequest{
		Title:       "Salted Cookie",
		Serving:     12,
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: salt.String(), Amount: "1 pinch"}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Salted Cookie", updated.Title)
	assert.Equal(t, 12, updated.Serving)
	assert.Nil(t, updated.Category, "an empty category id clears the category")
	assert.Equal(t, []domain.RecipeIngredientResponse{{IngredientID: salt.String(), Name: "Salt", Amount: "1 pinch"}}, updated.Ingredients)

	emptied, err := f.svc.Update(ctx, created.ID, domain.RecipeRequest{Title: "Salted Cookie"})
	require.NoError(t, err)
	assert.Empty(t, emptied.Ingredients)
	assert.Empty(t, f.pairings(t, created.ID))
}

func TestUpdateRecipeConflictsAndMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cake, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Cake"})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, domain.RecipeRequest{Title: "Pie"})
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, cake.ID, domain.RecipeRequest{Title: "Pie"})
	assert.ErrorIs(t, err, domain.ErrRecipeExists)

	_, err = f.svc.Update(ctx, cake.ID, domain.RecipeRequest{Title: "Cake", Description: "same title is fine"})
	assert.NoError(t, err)

	_, err = f.svc.Update(ctx, uuid.NewString(), domain.RecipeRequest{Title: "Tart"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipeRemovesPairings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sugar := f.ingredient(t, "Sugar")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{
		Title:       "Candy",
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: sugar.String(), Amount: "1kg"}},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.Empty(t, f.pairings(t, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), domain.ErrRecipeNotFound)

	var n int64
	require.NoError(t, f.db.Model(&entities.Ingredient{}).Count(&n).Error)
	assert.Equal(t, int64(1), n, "ingredients outlive the recipe")
}

func TestAddIngredientOverwritesAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flour := f.ingredient(t, "Flour")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Bread"})
	require.NoError(t, err)

	first, err := f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Flour", first.Name)

	second, err := f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: "2"})
	require.NoError(t, err)
	assert.Equal(t, "2", second.Amount)

	rows := f.pairings(t, created.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].Amount)

	again, err := f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: "2"})
	require.NoError(t, err)
	assert.Equal(t, second, again)
	assert.Len(t, f.pairings(t, created.ID), 1)
}

func TestAddIngredientErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flour := f.ingredient(t, "Flour")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Bread"})
	require.NoError(t, err)

	_, err = f.svc.AddIngredient(ctx, uuid.NewString(), domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: "1"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: uuid.NewString(), Amount: "1"})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	_, err = f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: " "})
	assert.ErrorIs(t, err, domain.ErrAmountRequired)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: uuid.NewString(), Amount: " "})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound, "a missing ingredient is reported before a blank amount")

	_, err = f.svc.AddIngredients(ctx, created.ID, domain.RecipeAddIngredientsRequest{
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: uuid.NewString(), Amount: ""}},
	})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	assert.Empty(t, f.pairings(t, created.ID))
}

func TestAddIngredientKeepsAmountAsGiven(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flour := f.ingredient(t, "Flour")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Bread"})
	require.NoError(t, err)

	res, err := f.svc.AddIngredient(ctx, created.ID, domain.RecipeIngredientRequest{IngredientID: flour.String(), Amount: " 200g "})
	require.NoError(t, err)
	assert.Equal(t, " 200g ", res.Amount)

	got, err := f.svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, " 200g ", got.Ingredients[0].Amount)
}

func TestAddIngredientsBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flour := f.ingredient(t, "Flour")
	water := f.ingredient(t, "Water")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Dough"})
	require.NoError(t, err)

	res, err := f.svc.AddIngredients(ctx, created.ID, domain.RecipeAddIngredientsRequest{Ingredients: []domain.RecipeIngredientRequest{
		{IngredientID: flour.String(), Amount: "500g"},
		{IngredientID: water.String(), Amount: "300ml"},
		{IngredientID: flour.String(), Amount: "550g"},
	}})
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.RecipeID)
	assert.Len(t, res.Ingredients, 3)

	rows := f.pairings(t, created.ID)
	require.Len(t, rows, 2)
	amounts := map[uuid.UUID]string{}
	for _, row := range rows {
		amounts[row.IngredientID] = row.Amount
	}
	assert.Equal(t, "550g", amounts[flour], "the last duplicate wins")
	assert.Equal(t, "300ml", amounts[water])
}

func TestAddIngredientsBatchIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flour := f.ingredient(t, "Flour")

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Dough"})
	require.NoError(t, err)

	_, err = f.svc.AddIngredients(ctx, created.ID, domain.RecipeAddIngredientsRequest{Ingredients: []domain.RecipeIngredientRequest{
		{IngredientID: flour.String(), Amount: "500g"},
		{IngredientID: uuid.NewString(), Amount: "1"},
	}})
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	assert.Empty(t, f.pairings(t, created.ID))

	_, err = f.svc.AddIngredients(ctx, uuid.NewString(), domain.RecipeAddIngredientsRequest{})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSearchRecipes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dessert := f.category(t, "Dessert")
	drinks := f.category(t, "Drinks")

	for _, req := range []domain.RecipeRequest{
		{Title: "Chocolate Cake", CategoryID: dessert.String()},
		{Title: "Vanilla Pudding", CategoryID: dessert.String()},
		{Title: "Hot Chocolate", CategoryID: drinks.String()},
		{Title: "Lemonade", Description: "no chocolate here", CategoryID: drinks.String()},
	} {
		_, err := f.svc.Create(ctx, req)
		require.NoError(t, err)
	}

	all, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	found, err := f.svc.Search(ctx, "CHOC")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	page, err := f.svc.SearchPage(ctx, domain.RecipeSearchRequest{
		SearchRequest: domain.SearchRequest{Keyword: "choc", SortBy: "title", Order: "asc", Size: 10},
	})
	require.NoError(t, err)
	titles := make([]string, 0, len(page.Content))
	for _, r := range page.Content {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Chocolate Cake", "Hot Chocolate", "Lemonade"}, titles)

	page, err = f.svc.SearchPage(ctx, domain.RecipeSearchRequest{
		SearchRequest: domain.SearchRequest{Keyword: "choc", SortBy: "title", Order: "desc", Size: 10},
		CategoryName:  "dessert",
	})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Chocolate Cake", page.Content[0].Title)
	assert.Equal(t, "Dessert", page.Content[0].Category.Name)
	assert.Equal(t, int64(1), page.TotalElements)

	page, err = f.svc.SearchPage(ctx, domain.RecipeSearchRequest{
		SearchRequest: domain.SearchRequest{SortBy: "title", Size: 10},
		CategoryName:  "Soup",
	})
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	_, err = f.svc.SearchPage(ctx, domain.RecipeSearchRequest{SearchRequest: domain.SearchRequest{SortBy: "image", Size: 10}})
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
}

func imageHeader() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "cake.png", Header: textproto.MIMEHeader{"Content-Type": {"image/png"}}}
}

func TestUploadImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Cake"})
	require.NoError(t, err)

	first, err := f.svc.UploadImage(ctx, created.ID, imageHeader())
	require.NoError(t, err)
	require.Len(t, f.s3.uploaded, 1)
	assert.Equal(t, bucketURL+f.s3.uploaded[0], first.Image)

	second, err := f.svc.UploadImage(ctx, created.ID, imageHeader())
	require.NoError(t, err)
	assert.NotEqual(t, first.Image, second.Image)
	assert.Equal(t, []string{f.s3.uploaded[0]}, f.s3.deleted, "the replaced image is removed")

	_, err = f.svc.UploadImage(ctx, created.ID, nil)
	assert.ErrorIs(t, err, domain.ErrRecipeImageNeeded)

	_, err = f.svc.UploadImage(ctx, uuid.NewString(), imageHeader())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	f.s3.fail = true
	_, err = f.svc.UploadImage(ctx, created.ID, imageHeader())
	assert.Error(t, err)
}

func TestUploadImageDropsObjectWhenRecipeWriteFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Cake"})
	require.NoError(t, err)

	f.s3.deleteErr = errors.New("s3 unavailable")
	f.s3.onUpload = func() {
		require.NoError(t, f.db.Migrator().DropTable(&entities.Recipe{}))
	}

	_, err = f.svc.UploadImage(ctx, created.ID, imageHeader())
	assert.ErrorIs(t, err, domain.ErrDatabase)
	require.Len(t, f.s3.uploaded, 1)
	assert.Equal(t, f.s3.uploaded, f.s3.deleted)
}

func TestUpdateRecipeRemovesUnlinkedImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.RecipeRequest{Title: "Cake"})
	require.NoError(t, err)
	withImage, err := f.svc.UploadImage(ctx, created.ID, imageHeader())
	require.NoError(t, err)

	kept, err := f.svc.Update(ctx, created.ID, domain.RecipeRequest{Title: "Cake", Image: withImage.Image})
	require.NoError(t, err)
	assert.Equal(t, withImage.Image, kept.Image)
	assert.Empty(t, f.s3.deleted)

	cleared, err := f.svc.Update(ctx, created.ID, domain.RecipeRequest{Title: "Cake"})
	require.NoError(t, err)
	assert.Empty(t, cleared.Image)
	assert.Equal(t, f.s3.uploaded, f.s3.deleted)

	_, err = f.svc.Update(ctx, created.ID, domain.RecipeRequest{Title: "Cake", Image: "https://elsewhere.test/cake.png"})
	require.NoError(t, err)
	assert.Len(t, f.s3.deleted, 1, "links outside the bucket are never deleted")
}

func TestRecipeFilter(t *testing.T) {
	assert.Equal(t, query.All{}, recipe.RecipeFilter("", ""))

	sql, args, err := query.Compile(recipe.RecipeFilter("cake", "Dessert"), recipe.Columns)
	require.NoError(t, err)
	assert.Equal(t, "((LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\') AND "+
		"LOWER((SELECT categories.name FROM categories WHERE categories.id = recipes.category_id)) = ?)", sql)
	assert.Equal(t, []any{"%cake%", "%cake%", "dessert"}, args)
}
