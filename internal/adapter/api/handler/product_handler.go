package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"

	"autohost/internal/usecase"
	"autohost/pkg/errors"
	"autohost/pkg/response"
	"autohost/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// openImage turns the optional multipart "image" field into an upload.
// A missing field returns (nil, nil, nil); callers decide whether that is an
// error.
func openImage(c echo.Context) (*usecase.ImageUpload, multipart.File, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, errors.BadRequest("Could not read uploaded image", err)
	}

	return &usecase.ImageUpload{
		Content:     file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, file, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, err := parseProductForm(c)
	if err != nil {
		return response.Error(c, err)
	}

	image, file, err := openImage(c)
	if err != nil {
		return response.Error(c, err)
	}
	if file != nil {
		defer file.Close()
	}

	sellerID := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), sellerID, *input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func parseProductForm(c echo.Context) (*usecase.CreateProductInput, error) {
	name := c.FormValue("name")
	if name == "" {
		return nil, errors.BadRequest("name is required", nil)
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return nil, errors.BadRequest("price must be a positive number", err)
	}

	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return nil, errors.BadRequest("stock must be a non-negative integer", err)
	}

	input := &usecase.CreateProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		Brand:       c.FormValue("brand"),
		Side:        c.FormValue("side"),
		PartNumber:  c.FormValue("part_number"),
	}

	if input.Category == "" {
		return nil, errors.BadRequest("category is required", nil)
	}
	if input.Condition == "" {
		return nil, errors.BadRequest("condition is required", nil)
	}

	if c.FormValue("is_on_offer") == "true" {
		input.IsOnOffer = true
		input.OriginalPrice, _ = strconv.ParseFloat(c.FormValue("original_price"), 64)
		input.DiscountPercentage, _ = strconv.ParseFloat(c.FormValue("discount_percentage"), 64)
	}

	return input, nil
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	minPrice, _ := strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)

	list, err := h.productUseCase.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Name:      c.QueryParam("name"),
		Category:  c.QueryParam("category"),
		Condition: c.QueryParam("condition"),
		Brand:     c.QueryParam("brand"),
		SellerID:  c.QueryParam("sellerId"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Sort:      c.QueryParam("sort"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, list.Products, list.Total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")
	sellerID := c.Get("uid").(string)

	input := usecase.UpdateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Condition:   c.FormValue("condition"),
		Brand:       c.FormValue("brand"),
		Side:        c.FormValue("side"),
		PartNumber:  c.FormValue("part_number"),
	}

	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price <= 0 {
			return response.Error(c, errors.BadRequest("price must be a positive number", err))
		}
		input.Price = price
	}
	if v := c.FormValue("stock"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil || stock < 0 {
			return response.Error(c, errors.BadRequest("stock must be a non-negative integer", err))
		}
		input.Stock = &stock
	}
	if v := c.FormValue("is_on_offer"); v != "" {
		isOnOffer := v == "true"
		input.IsOnOffer = &isOnOffer
		input.OriginalPrice, _ = strconv.ParseFloat(c.FormValue("original_price"), 64)
		input.DiscountPercentage, _ = strconv.ParseFloat(c.FormValue("discount_percentage"), 64)
	}

	image, file, err := openImage(c)
	if err != nil {
		return response.Error(c, err)
	}
	if file != nil {
		defer file.Close()
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, sellerID, input, image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	sellerID := c.Get("uid").(string)

	list, err := h.productUseCase.ListMyProducts(c.Request().Context(), sellerID, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, list.Products, list.Total, pagination.Page, pagination.PageSize)
}
