package usecase

import (
	"context"
	"io"
	"time"

	"autohost/internal/domain/entity"
	"autohost/internal/domain/repository"
	"autohost/internal/domain/service"
	"autohost/pkg/errors"
	"autohost/pkg/logger"
)

const productImageFolder = "products"

// catalogAllFilter is the sentinel the storefront sends for "no filter" on
// select inputs.
const catalogAllFilter = "Todas"

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	fileService service.FileUploadService
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	fileService service.FileUploadService,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		fileService: fileService,
	}
}

type ImageUpload struct {
	Content     io.Reader
	ContentType string
}

type CreateProductInput struct {
	Name               string
	Description        string
	Price              float64
	Stock              int
	Category           string
	Condition          string
	Brand              string
	Side               string
	PartNumber         string
	IsOnOffer          bool
	OriginalPrice      float64
	DiscountPercentage float64
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input CreateProductInput, image *ImageUpload) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsSeller() {
		return nil, errors.Forbidden("Only sellers can publish products", nil)
	}

	if image == nil {
		return nil, errors.BadRequest("A product image is required", nil)
	}

	imageURL, err := uc.fileService.UploadFile(ctx, image.Content, image.ContentType, productImageFolder)
	if err != nil {
		return nil, errors.Internal("Failed to upload product image", err)
	}

	now := time.Now()
	product := &entity.Product{
		SellerID:           sellerID,
		SellerEmail:        seller.Email,
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		Stock:              input.Stock,
		Category:           input.Category,
		Condition:          input.Condition,
		Brand:              input.Brand,
		Side:               input.Side,
		PartNumber:         input.PartNumber,
		IsOnOffer:          input.IsOnOffer,
		OriginalPrice:      input.OriginalPrice,
		DiscountPercentage: input.DiscountPercentage,
		ImageURL:           imageURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

type ListProductsInput struct {
	Name      string
	Category  string
	Condition string
	Brand     string
	SellerID  string
	MinPrice  float64
	MaxPrice  float64
	Sort      string
	Page      int
	PageSize  int
}

type ProductList struct {
	Products []*entity.Product
	Total    int64
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, input ListProductsInput) (*ProductList, error) {
	filter := map[string]interface{}{}

	if input.Name != "" {
		filter["name"] = input.Name
	}
	if input.Category != "" && input.Category != catalogAllFilter {
		filter["category"] = input.Category
	}
	if input.Condition != "" && input.Condition != catalogAllFilter {
		filter["condition"] = input.Condition
	}
	if input.Brand != "" && input.Brand != catalogAllFilter {
		filter["brand"] = input.Brand
	}
	if input.SellerID != "" {
		filter["sellerId"] = input.SellerID
	}
	if input.MinPrice > 0 {
		filter["minPrice"] = input.MinPrice
	}
	if input.MaxPrice > 0 {
		filter["maxPrice"] = input.MaxPrice
	}

	offset := (input.Page - 1) * input.PageSize

	products, total, err := uc.productRepo.List(ctx, filter, input.Sort, input.PageSize, offset)
	if err != nil {
		return nil, err
	}

	return &ProductList{Products: products, Total: total}, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

type UpdateProductInput struct {
	Name               string
	Description        string
	Price              float64
	Stock              *int
	Category           string
	Condition          string
	Brand              string
	Side               string
	PartNumber         string
	IsOnOffer          *bool
	OriginalPrice      float64
	DiscountPercentage float64
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerID string, input UpdateProductInput, image *ImageUpload) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You can only modify your own products", nil)
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Condition != "" {
		product.Condition = input.Condition
	}
	if input.Brand != "" {
		product.Brand = input.Brand
	}
	if input.Side != "" {
		product.Side = input.Side
	}
	if input.PartNumber != "" {
		product.PartNumber = input.PartNumber
	}
	if input.IsOnOffer != nil {
		product.IsOnOffer = *input.IsOnOffer
		if !product.IsOnOffer {
			product.OriginalPrice = 0
			product.DiscountPercentage = 0
		}
	}
	if input.OriginalPrice > 0 {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.DiscountPercentage > 0 {
		product.DiscountPercentage = input.DiscountPercentage
	}

	if image != nil {
		imageURL, err := uc.fileService.UploadFile(ctx, image.Content, image.ContentType, productImageFolder)
		if err != nil {
			return nil, errors.Internal("Failed to upload product image", err)
		}

		// The listing stays valid even if the old blob lingers.
		if product.ImageURL != "" {
			if err := uc.fileService.DeleteFile(ctx, product.ImageURL); err != nil {
				logger.Warn("failed to delete replaced product image %s: %v", product.ImageURL, err)
			}
		}
		product.ImageURL = imageURL
	}

	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return errors.Forbidden("You can only delete your own products", nil)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImageURL != "" {
		if err := uc.fileService.DeleteFile(ctx, product.ImageURL); err != nil {
			logger.Warn("failed to delete image of product %s: %v", id, err)
		}
	}

	return nil
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, sellerID string, page, pageSize int) (*ProductList, error) {
	return uc.ListProducts(ctx, ListProductsInput{
		SellerID: sellerID,
		Page:     page,
		PageSize: pageSize,
	})
}
