package handlers

import (
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants.
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("MenuItems").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu items of a restaurant. An unknown restaurant id
// yields an empty menu, not a 404.
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Where("restaurant_id = ?", c.Param("id")).Find(&items)
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}
