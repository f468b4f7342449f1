package fiber

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"shop-analytics-service/internal/analytics/core/domain"
)

type ListDocumentsUseCase interface {
	Execute(ctx context.Context, c domain.Collection) ([]domain.Document, error)
}

// DocumentsHandler serves raw collection dumps.
type DocumentsHandler struct {
	uc  ListDocumentsUseCase
	log logrus.FieldLogger
}

func NewDocumentsHandler(uc ListDocumentsUseCase, log logrus.FieldLogger) *DocumentsHandler {
	return &DocumentsHandler{uc: uc, log: log}
}

func (h *DocumentsHandler) Register(r fiber.Router) {
	r.Get("/orders", h.list(domain.CollectionOrders))
	r.Get("/customers", h.list(domain.CollectionCustomers))
	r.Get("/products", h.list(domain.CollectionProducts))
}

// ListDocuments godoc
// @Summary Raw collection dump
// @Description Returns every document of the orders, customers or products collection
// @Tags Documents
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
// @Router /customers [get]
// @Router /products [get]
func (h *DocumentsHandler) list(collection domain.Collection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := h.uc.Execute(c.UserContext(), collection)
		if err != nil {
			return internalError(c, h.log, err)
		}
		if docs == nil {
			docs = []domain.Document{}
		}
		return c.Status(http.StatusOK).JSON(docs)
	}
}
