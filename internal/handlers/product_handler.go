package handlers

import (
	"strings"

	"ecomm/internal/models"
	"ecomm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads require auth; writes
// additionally require the admin gate.
func (h *ProductHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Get("/getSingleProduct/:id", auth, h.HandleGetSingleProduct)
	api.Get("/getAllProducts", auth, h.HandleGetAllProducts)

	api.Post("/addProduct", auth, admin, h.HandleAddProduct)
	api.Put("/updateProduct/:id", auth, admin, h.HandleUpdateProduct)
	api.Delete("/deleteProduct/:id", auth, admin, h.HandleDeleteProduct)
}

// HandleGetSingleProduct returns a product by ID.
func (h *ProductHandler) HandleGetSingleProduct(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleGetAllProducts lists products. ?new returns exactly the single
// newest product and takes precedence over ?category, which returns products
// whose category set intersects the requested (comma-separated) categories.
func (h *ProductHandler) HandleGetAllProducts(c *fiber.Ctx) error {
	var categories []string
	if q := c.Query("category"); q != "" {
		categories = strings.Split(q, ",")
	}

	products, err := h.service.List(c.UserContext(), c.Query("new") != "", categories)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// AddProductRequest is the request body for creating a product. Img is the
// image source handed to the asset host.
type AddProductRequest struct {
	Name        string   `json:"name" validate:"required,max=120"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Categories  []string `json:"categories"`
	Size        []string `json:"size"`
	Color       []string `json:"color"`
	Img         string   `json:"img" validate:"required"`
}

// HandleAddProduct uploads the image and inserts the product.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Categories:  req.Categories,
		Size:        req.Size,
		Color:       req.Color,
	}
	if err := h.service.Create(c.UserContext(), product, req.Img); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// UpdateProductRequest is the request body for patching a product. Absent
// fields are left untouched; Img replaces the hosted image.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=120"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Categories  []string `json:"categories"`
	Size        []string `json:"size"`
	Color       []string `json:"color"`
	Img         *string  `json:"img"`
}

// HandleUpdateProduct patches a product by ID.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	product, err := h.service.Update(c.UserContext(), c.Params("id"), services.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Categories:  req.Categories,
		Size:        req.Size,
		Color:       req.Color,
		Image:       req.Img,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleDeleteProduct removes a product and its hosted image together.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product was deleted successfully",
	})
}
