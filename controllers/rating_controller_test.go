package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestTruckRatingCreateThenDuplicate(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	body := gin.H{"truck_rating": 5, "truck_id": truckID, "user_id": idB}
	path := fmt.Sprintf("/trucks/%d/truck-ratings", truckID)

	first := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusUnprocessableEntity, second.Code)
	require.Equal(t, "truck rating already exists", message(t, second))
}

func TestTruckRatingEditMissing(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/trucks/%d/truck-ratings/999", truckID), tokenB,
		gin.H{"truck_rating": 3, "truck_id": truckID, "user_id": idB})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "could not find truck rating with id 999", message(t, w))
}

func TestTruckRatingEditHappyPath(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	created := doJSON(t, r, http.MethodPost, fmt.Sprintf("/trucks/%d/truck-ratings", truckID), tokenB,
		gin.H{"truck_rating": 5, "truck_id": truckID, "user_id": idB})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	ratingID := uint(decodeBody(t, created)["truck_rating_id"].(float64))

	edited := doJSON(t, r, http.MethodPut, fmt.Sprintf("/trucks/%d/truck-ratings/%d", truckID, ratingID), tokenB,
		gin.H{"truck_rating": 2, "truck_id": truckID, "user_id": idB})
	require.Equal(t, http.StatusOK, edited.Code, edited.Body.String())
	require.Equal(t, float64(2), decodeBody(t, edited)["truck_rating"])
}

// Rating rows are self-scoped: the body user_id must be the caller's own.
func TestTruckRatingRejectsForeignUserID(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, _ := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/trucks/%d/truck-ratings", truckID), tokenB,
		gin.H{"truck_rating": 1, "truck_id": truckID, "user_id": idA})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid credentials", message(t, w))
}

func TestTruckRatingIdsMustMatch(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	otherID := createTruck(t, r, tokenA, idA, "Brisk It")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/trucks/%d/truck-ratings", truckID), tokenB,
		gin.H{"truck_rating": 4, "truck_id": otherID, "user_id": idB})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "truck id in body must match params in path", message(t, w))
}

func TestItemRatingCreateThenDuplicate(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")
	itemID := createItem(t, r, tokenA, truckID, "Brisket Plate")

	body := gin.H{"item_rating": 4, "item_id": itemID, "user_id": idB}
	path := fmt.Sprintf("/items/%d/item-ratings", itemID)

	first := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusUnprocessableEntity, second.Code)
	require.Equal(t, "item rating already exists", message(t, second))
}

func TestFavoriteCreateDuplicateAndDelete(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	tokenB, idB := register(t, r, "bob")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	body := gin.H{"truck_id": truckID, "user_id": idB}
	path := fmt.Sprintf("/trucks/%d/favorites", truckID)

	first := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	favoriteID := uint(decodeBody(t, first)["favorite_id"].(float64))

	second := doJSON(t, r, http.MethodPost, path, tokenB, body)
	require.Equal(t, http.StatusUnprocessableEntity, second.Code)
	require.Equal(t, "truck favorite already exists", message(t, second))

	delPath := fmt.Sprintf("/trucks/%d/favorites/%d", truckID, favoriteID)

	// only the favoriting user may remove the row, truck owner included
	asA := doJSON(t, r, http.MethodDelete, delPath, tokenA, nil)
	require.Equal(t, http.StatusUnauthorized, asA.Code)
	require.Equal(t, "invalid credentials", message(t, asA))

	asB := doJSON(t, r, http.MethodDelete, delPath, tokenB, nil)
	require.Equal(t, http.StatusOK, asB.Code, asB.Body.String())
	require.Equal(t, float64(favoriteID), decodeBody(t, asB)["favorite_id"])
}

func TestFavoriteDeleteMissing(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/trucks/%d/favorites/999", truckID), tokenA, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "could not find favorite with id 999", message(t, w))
}

func TestFavoriteInvalidPayload(t *testing.T) {
	r, _ := setupServer(t)

	tokenA, idA := register(t, r, "alice")
	truckID := createTruck(t, r, tokenA, idA, "Salty")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/trucks/%d/favorites", truckID), tokenA,
		gin.H{"truck_id": truckID})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "truck not added to favorites due to missing property", message(t, w))
}
