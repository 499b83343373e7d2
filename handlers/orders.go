package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/logger"
	"food-ordering-api/metrics"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderItemRequest struct {
	ItemID              uint   `json:"itemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderRequest struct {
	CustomerID   uint               `json:"customerId"`
	RestaurantID uint               `json:"restaurantId"`
	Items        []OrderItemRequest `json:"items"`
}

// invalidItemError marks a requested menu item that does not exist on the
// target restaurant's menu. It aborts the creation transaction.
type invalidItemError struct {
	ItemID uint
}

func (e *invalidItemError) Error() string {
	return fmt.Sprintf("menu item %d is not available for this restaurant", e.ItemID)
}

var errInvalidQuantity = errors.New("quantity must be a positive integer")

// CreateOrder places an order for the authenticated caller. The order and
// all of its items are created in one transaction: the first invalid item
// rolls the whole order back, so a partial order is never observable.
//
// Menu items are resolved by id AND restaurant id in a single predicate,
// which rejects ids that exist but belong to a different restaurant.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}
	if req.CustomerID == 0 || req.RestaurantID == 0 || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	// Identity check comes before any restaurant or menu validation.
	if req.CustomerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only place an order as yourself"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No restaurant found"})
		return
	}

	order := models.Order{
		CustomerID:   req.CustomerID,
		RestaurantID: restaurant.ID,
		Status:       models.StatusReceived,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, it := range req.Items {
			var menuItem models.MenuItem
			err := tx.Where("id = ? AND restaurant_id = ?", it.ItemID, restaurant.ID).First(&menuItem).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &invalidItemError{ItemID: it.ItemID}
			}
			if err != nil {
				return err
			}

			quantity := it.Quantity
			if quantity == 0 {
				quantity = 1
			}
			if quantity < 0 {
				return errInvalidQuantity
			}

			item := models.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          menuItem.ID,
				Quantity:            quantity,
				SpecialInstructions: it.SpecialInstructions,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})

	var itemErr *invalidItemError
	switch {
	case errors.As(err, &itemErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": itemErr.Error()})
		return
	case errors.Is(err, errInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidQuantity.Error()})
		return
	case err != nil:
		log := logger.Get()
		log.Error().Err(err).Uint("customer_id", req.CustomerID).Msg("order create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	metrics.OrdersCreatedTotal.Inc()

	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListOrders is a role-branching listing: restaurant owners see orders for
// the restaurant they own (an explicit restaurantId filter stays constrained
// to it), customers see their own orders, anything else gets an empty set.
func ListOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	orders := []models.Order{}
	query := config.DB.Preload("Items").Order("created_at desc")

	switch middleware.GetRole(c) {
	case models.RoleRestaurantOwner:
		var restaurant models.Restaurant
		if err := config.DB.Where("owner_id = ?", userID).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"count": 0, "orders": orders})
			return
		}
		query = query.Where("restaurant_id = ?", restaurant.ID)
		if rid := c.Query("restaurantId"); rid != "" {
			query = query.Where("restaurant_id = ?", rid)
		}
	case models.RoleCustomer:
		query = query.Where("customer_id = ?", userID)
	default:
		c.JSON(http.StatusOK, gin.H{"count": 0, "orders": orders})
		return
	}

	query.Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order. A customer may view only their own
// orders; an owner only orders placed against their restaurant. An unknown
// id is a 404, a foreign order a 403.
func GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	switch middleware.GetRole(c) {
	case models.RoleCustomer:
		if order.CustomerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
			return
		}
	case models.RoleRestaurantOwner:
		var restaurant models.Restaurant
		if err := config.DB.Where("id = ? AND owner_id = ?", order.RestaurantID, userID).First(&restaurant).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view orders for your own restaurant"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus overwrites an order's status. The owner-role gate runs
// in middleware before the order is loaded. Status values are validated for
// set membership only; transitions are not ordered.
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("id = ? AND owner_id = ?", order.RestaurantID, ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only modify your own orders"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if err := statemachine.ValidateStatus(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		log := logger.Get()
		log.Error().Err(err).Uint("order_id", order.ID).Msg("status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(string(req.Status)).Inc()

	config.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"order": order})
}
