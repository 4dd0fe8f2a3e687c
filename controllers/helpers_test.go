package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/configs"
	"github.com/dgamboa/foodtrucks-backend/middlewares"
	"github.com/dgamboa/foodtrucks-backend/routes"
)

const testSecret = "test-secret"

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// shared cache keeps the in-memory DB alive across pool connections;
	// _fk=1 turns on FK enforcement so cascades fire
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		JWTSecret:  testSecret,
		JWTTTL:     time.Hour,
		BcryptCost: bcrypt.MinCost,
	}

	r := gin.New()
	r.Use(middlewares.Recovery())
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeBody(t, w)["message"].(string)
	return msg
}

// register creates a user through the API and returns its token and id.
func register(t *testing.T, r *gin.Engine, username string) (string, uint) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@test.com",
		"password": "1234",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	registered := body["registered"].(map[string]any)
	return token, uint(registered["user_id"].(float64))
}

// createTruck creates a truck owned by the given user through the API.
func createTruck(t *testing.T, r *gin.Engine, token string, userID uint, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/trucks", token, gin.H{
		"truck_name":        name,
		"truck_description": "test truck",
		"open_time":         "10:00:00",
		"close_time":        "20:00:00",
		"cuisine":           "BBQ",
		"user_id":           userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["truck_id"].(float64))
}

// createItem creates an item under the truck through the API.
func createItem(t *testing.T, r *gin.Engine, token string, truckID uint, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/items", token, gin.H{
		"item_name":        name,
		"item_description": "test item",
		"item_price":       5,
		"truck_id":         truckID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["item_id"].(float64))
}

// createPhoto uploads a photo for the item through the API.
func createPhoto(t *testing.T, r *gin.Engine, token string, itemID uint) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/items/%d/photos", itemID), token, gin.H{
		"photo_url": "https://example.com/photo.jpg",
		"item_id":   itemID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decodeBody(t, w)["photo_id"].(float64))
}
