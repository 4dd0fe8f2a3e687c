package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Photo mutations resolve ownership two hops up: photo -> item -> truck -> user.
func TestPhotoDeleteOwnerTwoHops(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, _ := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")
	photoID := createPhoto(t, r, tokenA, itemID)

	path := fmt.Sprintf("/items/%d/photos/%d", itemID, photoID)

	asB := doJSON(t, r, http.MethodDelete, path, tokenB, nil)
	require.Equal(t, http.StatusUnauthorized, asB.Code)
	require.Equal(t, "invalid credentials", message(t, asB))

	asA := doJSON(t, r, http.MethodDelete, path, tokenA, nil)
	require.Equal(t, http.StatusOK, asA.Code, asA.Body.String())
	require.Equal(t, float64(photoID), decodeBody(t, asA)["photo_id"])
}

func TestPhotoCreateRequiresItemOwner(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, _ := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/items/%d/photos", itemID), tokenB, gin.H{
		"photo_url": "https://example.com/sneaky.jpg",
		"item_id":   itemID,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid credentials", message(t, w))
}

func TestPhotoCreateInvalidPayload(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/items/%d/photos", itemID), tokenA, gin.H{
		"item_id": itemID,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "photo upload failed due to invalid photo object", message(t, w))
}

func TestPhotoDeleteMissingPhoto(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/items/%d/photos/999", itemID), tokenA, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "could not find photo with id 999", message(t, w))
}

func TestPhotoListPublic(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")
	createPhoto(t, r, tokenA, itemID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/items/%d/photos", itemID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var photos []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 1)
}
