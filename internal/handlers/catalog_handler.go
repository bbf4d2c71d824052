package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/internal/services"
)

// OfferLister lists currently valid special offers
type OfferLister interface {
	ListActive(now time.Time) ([]models.SpecialOffer, error)
}

// CatalogHandler serves the public inventory catalog
type CatalogHandler struct {
	inventory services.InventoryStore
	offers    OfferLister
	logger    *logrus.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(inventory services.InventoryStore, offers OfferLister, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		inventory: inventory,
		offers:    offers,
		logger:    logger,
	}
}

// ListBuses handles GET /api/v1/buses
func (h *CatalogHandler) ListBuses(c *gin.Context) {
	h.listByKind(c, models.KindBus)
}

// ListHotels handles GET /api/v1/hotels
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	h.listByKind(c, models.KindHotel)
}

func (h *CatalogHandler) listByKind(c *gin.Context, kind models.ItemKind) {
	items, err := h.inventory.ListByKind(kind)
	if err != nil {
		h.logger.WithError(err).WithField("kind", kind).Error("Failed to list inventory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListSpecialOffers handles GET /api/v1/special-offers
func (h *CatalogHandler) ListSpecialOffers(c *gin.Context) {
	offers, err := h.offers.ListActive(time.Now().UTC())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list special offers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch special offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}
