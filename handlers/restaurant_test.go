package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-ordering-api/models"
)

func TestOwnerCreatesRestaurantOnce(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "owner", true)
	token := loginUser(t, r, "owner")

	w := doJSON(t, r, http.MethodPost, "/api/restaurant", token, map[string]string{
		"name":        "trattoria",
		"description": "wood-fired",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, body %s", w.Code, w.Body.String())
	}

	// A user owns at most one restaurant.
	w = doJSON(t, r, http.MethodPost, "/api/restaurant", token, map[string]string{"name": "second"})
	if w.Code != http.StatusConflict {
		t.Fatalf("second create: got %d, want 409", w.Code)
	}
	if n := countRows(t, &models.Restaurant{}); n != 1 {
		t.Fatalf("expected 1 restaurant, got %d", n)
	}
}

func TestCustomerCannotManageRestaurant(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "cust", false)
	token := loginUser(t, r, "cust")

	w := doJSON(t, r, http.MethodPost, "/api/restaurant", token, map[string]string{"name": "nope"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer create restaurant: got %d, want 403", w.Code)
	}
}

func TestMenuManagement(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "owner", true)
	registerUser(t, r, "owner2", true)
	token := loginUser(t, r, "owner")
	token2 := loginUser(t, r, "owner2")

	w := doJSON(t, r, http.MethodPost, "/api/restaurant", token, map[string]string{"name": "trattoria"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create restaurant: got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/restaurant", token2, map[string]string{"name": "sushi bar"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create restaurant2: got %d", w.Code)
	}

	// Price must be positive.
	w = doJSON(t, r, http.MethodPost, "/api/restaurant/menu", token, map[string]interface{}{
		"name":  "freebie",
		"price": 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero price: got %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/restaurant/menu", token, map[string]interface{}{
		"name":        "pizza",
		"price":       22.50,
		"description": "margherita",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: got %d, body %s", w.Code, w.Body.String())
	}
	item := decodeBody(t, w)["item"].(map[string]interface{})
	itemID := uint(item["id"].(float64))

	// Another owner cannot touch it.
	path := fmt.Sprintf("/api/restaurant/menu/%d", itemID)
	w = doJSON(t, r, http.MethodPut, path, token2, map[string]interface{}{"name": "stolen", "price": 1})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update: got %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, path, token2, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: got %d, want 403", w.Code)
	}

	// The owner can update and delete.
	w = doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{
		"name":  "pizza bianca",
		"price": 24.00,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update item: got %d, body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete item: got %d", w.Code)
	}
	if n := countRows(t, &models.MenuItem{}); n != 0 {
		t.Fatalf("expected menu empty, got %d items", n)
	}
}
