package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/models"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database and a full router for one test.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if _, err := config.Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// One connection, or the pool would hand out separate empty
	// in-memory databases.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerUser creates an account through the API and returns its id.
func registerUser(t *testing.T, r *gin.Engine, username string, owner bool) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"username":          username,
		"email":             username + "@test.local",
		"password":          "secret123",
		"isCustomer":        !owner,
		"isRestaurantOwner": owner,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d, body %s", username, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	return uint(body["id"].(float64))
}

// loginUser logs in through the API and returns the access token.
func loginUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: got %d, body %s", username, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	return body["access"].(string)
}

// seedRestaurant creates a restaurant with two menu items directly in the store.
func seedRestaurant(t *testing.T, ownerID uint, name string) (models.Restaurant, []models.MenuItem) {
	t.Helper()
	restaurant := models.Restaurant{OwnerID: ownerID, Name: name, Description: "test restaurant"}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	items := []models.MenuItem{
		{RestaurantID: restaurant.ID, Name: name + " pizza", Price: decimal.RequireFromString("22.00")},
		{RestaurantID: restaurant.ID, Name: name + " soup", Price: decimal.RequireFromString("10.50")},
	}
	for i := range items {
		if err := config.DB.Create(&items[i]).Error; err != nil {
			t.Fatalf("seed menu item: %v", err)
		}
	}
	return restaurant, items
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
