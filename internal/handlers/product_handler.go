package handlers

import (
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
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

// RegisterRoutes registers the read-only product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterAdminRoutes registers the product mutation routes. The caller
// mounts these behind the admin middleware.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
	})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return apperrors.Wrap(apperrors.KindValidation, "Invalid request body", err)
	}

	if err := h.validate.Struct(product); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "Product validation failed", err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return apperrors.Wrap(apperrors.KindValidation, "Invalid request body", err)
	}
	product.ID = productID

	if err := h.validate.Struct(product); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "Product validation failed", err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}
