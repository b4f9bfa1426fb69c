package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autohost/internal/domain/entity"
	"autohost/pkg/errors"
)

type uploaderStub struct {
	url     string
	uploads int
	deleted []string
}

func (u *uploaderStub) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (string, error) {
	u.uploads++
	return u.url, nil
}

func (u *uploaderStub) DeleteFile(ctx context.Context, fileURL string) error {
	u.deleted = append(u.deleted, fileURL)
	return nil
}

func (u *uploaderStub) Close() error { return nil }

func newProductFixture() (*ProductUseCase, *fakeProductRepo, *uploaderStub) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {
			SellerID: "seller",
			Name:     "Faro",
			Price:    600,
			Stock:    2,
			ImageURL: "https://storage.googleapis.com/bucket/products/old.jpg",
		},
	}}
	userRepo := &fakeUserRepo{users: map[string]*entity.User{
		"seller": {ID: "seller", Email: "seller@example.com", Role: entity.RoleSeller},
		"buyer":  {ID: "buyer", Email: "buyer@example.com", Role: entity.RoleBuyer},
	}}
	files := &uploaderStub{url: "https://storage.googleapis.com/bucket/products/new.jpg"}

	return NewProductUseCase(productRepo, userRepo, files), productRepo, files
}

func TestCreateProductRequiresSellerRole(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.CreateProduct(context.Background(), "buyer", CreateProductInput{Name: "Faro"}, &ImageUpload{Content: strings.NewReader("img")})
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestCreateProductRequiresImage(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.CreateProduct(context.Background(), "seller", CreateProductInput{Name: "Faro"}, nil)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestCreateProductUploadsAndStamps(t *testing.T) {
	uc, productRepo, files := newProductFixture()

	product, err := uc.CreateProduct(context.Background(), "seller", CreateProductInput{
		Name:      "Faro derecho",
		Price:     600,
		Stock:     2,
		Category:  "Iluminación",
		Condition: "Usado",
	}, &ImageUpload{Content: strings.NewReader("img"), ContentType: "image/jpeg"})
	require.NoError(t, err)

	assert.Equal(t, files.url, product.ImageURL)
	assert.Equal(t, "seller@example.com", product.SellerEmail)
	assert.False(t, product.CreatedAt.IsZero())
	require.Len(t, productRepo.created, 1)
}

func TestListProductsTranslatesSentinel(t *testing.T) {
	uc, productRepo, _ := newProductFixture()

	_, err := uc.ListProducts(context.Background(), ListProductsInput{
		Name:      "faro",
		Category:  "Todas",
		Condition: "Todas",
		Brand:     "Nissan",
		MinPrice:  100,
		Sort:      "priceAsc",
		Page:      2,
		PageSize:  9,
	})
	require.NoError(t, err)

	assert.Equal(t, "faro", productRepo.lastFilter["name"])
	assert.NotContains(t, productRepo.lastFilter, "category")
	assert.NotContains(t, productRepo.lastFilter, "condition")
	assert.Equal(t, "Nissan", productRepo.lastFilter["brand"])
	assert.Equal(t, 100.0, productRepo.lastFilter["minPrice"])
	assert.NotContains(t, productRepo.lastFilter, "maxPrice")
	assert.Equal(t, "priceAsc", productRepo.lastSort)
}

func TestUpdateProductOwnershipEnforced(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.UpdateProduct(context.Background(), "prod-1", "someone-else", UpdateProductInput{Name: "Nuevo"}, nil)
	assert.True(t, errors.Is(err, errors.CodeForbidden))
}

func TestUpdateProductReplacesImage(t *testing.T) {
	uc, productRepo, files := newProductFixture()

	product, err := uc.UpdateProduct(context.Background(), "prod-1", "seller", UpdateProductInput{},
		&ImageUpload{Content: strings.NewReader("img"), ContentType: "image/png"})
	require.NoError(t, err)

	assert.Equal(t, files.url, product.ImageURL)
	assert.Equal(t, []string{"https://storage.googleapis.com/bucket/products/old.jpg"}, files.deleted)
	require.Len(t, productRepo.updated, 1)
}

func TestDeleteProductOwnershipEnforced(t *testing.T) {
	uc, productRepo, files := newProductFixture()

	err := uc.DeleteProduct(context.Background(), "prod-1", "someone-else")
	assert.True(t, errors.Is(err, errors.CodeForbidden))
	assert.Empty(t, productRepo.deleted)

	require.NoError(t, uc.DeleteProduct(context.Background(), "prod-1", "seller"))
	assert.Equal(t, []string{"prod-1"}, productRepo.deleted)
	assert.Equal(t, []string{"https://storage.googleapis.com/bucket/products/old.jpg"}, files.deleted)
}
