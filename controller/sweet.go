package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Unsorted-Wings/sweet-shop/config"
	"github.com/Unsorted-Wings/sweet-shop/models"
	"github.com/Unsorted-Wings/sweet-shop/store"
	"github.com/Unsorted-Wings/sweet-shop/utils"
	"github.com/gin-gonic/gin"
)

const (
	AllSweetsCacheKey = "all_sweets"
	SweetCacheTTL     = 5 * time.Minute
)

func sweetStore() *store.SweetStore {
	return store.NewSweetStore(config.DB)
}

// invalidateSweetCaches drops the cached listing and, when id is set, the
// per-sweet entry. Runs in the background like the rest of the cache layer.
func invalidateSweetCaches(id string) {
	if config.RedisClient == nil {
		return
	}
	go config.RedisClient.Del(context.Background(), AllSweetsCacheKey)
	if id != "" {
		go config.RedisClient.Del(context.Background(), "sweet:"+id)
	}
}

// CreateSweet godoc
// @Summary Create a new sweet
// @Description Adds a new sweet to the catalog. Admin only.
// @Tags sweets
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /api/sweets [post]
func CreateSweet(c *gin.Context) {
	var in utils.SweetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := utils.ValidateSweetCreate(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sweet := models.Sweet{
		Name:     strings.TrimSpace(*in.Name),
		Category: *in.Category,
		Price:    *in.Price,
		Quantity: int(*in.Quantity),
	}

	created, err := sweetStore().Create(c.Request.Context(), sweet)
	if err != nil {
		log.Printf("Error creating sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	invalidateSweetCaches("")

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sweet created successfully",
		"sweet":   created,
	})
}

// GetSweets godoc
// @Summary Get all sweets
// @Description Lists sweets with optional category filter and sorting, with caching.
// @Tags sweets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets [get]
func GetSweets(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Query("category")
	sort := c.Query("sort")
	order := c.DefaultQuery("order", "asc")

	// Only the unparameterized listing is cached; filtered or sorted
	// listings always hit the database.
	cacheable := category == "" && sort == ""

	if cacheable && config.RedisClient != nil {
		cacheData, err := config.RedisClient.Get(ctx, AllSweetsCacheKey).Result()
		if err == nil {
			var sweets []models.Sweet
			if json.Unmarshal([]byte(cacheData), &sweets) == nil {
				c.JSON(http.StatusOK, gin.H{
					"success": true,
					"message": utils.ListMessage(len(sweets)),
					"sweets":  sweets,
				})
				return
			}
		}
	}

	filter := store.SweetFilter{Category: category, Sort: sort, Order: order}
	sweets, err := sweetStore().List(ctx, filter)
	if err != nil {
		log.Printf("Error fetching sweets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if cacheable && config.RedisClient != nil {
		sweetsJSON, err := json.Marshal(sweets)
		if err == nil {
			go config.RedisClient.Set(context.Background(), AllSweetsCacheKey, sweetsJSON, SweetCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": utils.ListMessage(len(sweets)),
		"sweets":  sweets,
	})
}

// SearchSweets godoc
// @Summary Search sweets
// @Description Searches by name, category, and price range with sorting.
// @Tags sweets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/search [get]
func SearchSweets(c *gin.Context) {
	filter, err := store.ParseSweetFilter(
		c.Query("name"),
		c.Query("category"),
		c.Query("minPrice"),
		c.Query("maxPrice"),
		c.Query("sort"),
		c.DefaultQuery("order", "asc"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sweets, err := sweetStore().List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("Error searching sweets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// A search without any criteria reads as a plain listing.
	message := utils.SearchMessage(len(sweets))
	if filter.IsEmpty() {
		message = utils.ListMessage(len(sweets))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"sweets":  sweets,
	})
}

// GetSweetByID godoc
// @Summary Get a single sweet by its ID
// @Tags sweets
// @Produce json
// @Param id path string true "Sweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/{id} [get]
func GetSweetByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	sweetCacheKey := "sweet:" + id

	if config.RedisClient != nil {
		cachedSweet, err := config.RedisClient.Get(ctx, sweetCacheKey).Result()
		if err == nil {
			var sweet models.Sweet
			if json.Unmarshal([]byte(cachedSweet), &sweet) == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "sweet": sweet})
				return
			}
		}
	}

	sweet, err := sweetStore().Get(ctx, id)
	if err != nil {
		if store.IsSweetNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sweet not found"})
			return
		}
		log.Printf("Error fetching sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if config.RedisClient != nil {
		sweetJSON, err := json.Marshal(sweet)
		if err == nil {
			go config.RedisClient.Set(context.Background(), sweetCacheKey, sweetJSON, SweetCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sweet": sweet})
}

// UpdateSweet godoc
// @Summary Update sweet details
// @Description Updates name, price, and category only. Quantity changes must
// go through the purchase and restock endpoints. Admin only.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "Sweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/{id} [put]
func UpdateSweet(c *gin.Context) {
	id := c.Param("id")

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Quantity is stock-ledger territory; the whole update is rejected
	// before storage is touched, whatever the value.
	if _, ok := raw["quantity"]; ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be updated via PUT. Use restock/purchase endpoints."})
		return
	}

	var in utils.SweetInput
	fields := map[string]interface{}{
		"name":     &in.Name,
		"price":    &in.Price,
		"category": &in.Category,
	}
	for key, dst := range fields {
		if msg, ok := raw[key]; ok {
			if err := json.Unmarshal(msg, dst); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
		}
	}

	if err := utils.ValidateSweetUpdate(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attrs := store.SweetAttributes{Price: in.Price, Category: in.Category}
	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		attrs.Name = &trimmed
	}

	updated, err := sweetStore().UpdateAttributes(c.Request.Context(), id, attrs)
	if err != nil {
		if store.IsSweetNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sweet not found"})
			return
		}
		log.Printf("Error updating sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	invalidateSweetCaches(id)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sweet updated successfully",
		"sweet":   updated,
	})
}

// DeleteSweet godoc
// @Summary Delete a sweet
// @Tags sweets
// @Produce json
// @Param id path string true "Sweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/{id} [delete]
func DeleteSweet(c *gin.Context) {
	id := c.Param("id")

	deleted, err := sweetStore().Delete(c.Request.Context(), id)
	if err != nil {
		if store.IsSweetNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sweet not found"})
			return
		}
		log.Printf("Error deleting sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	invalidateSweetCaches(id)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sweet deleted successfully",
		"sweet":   deleted,
	})
}

type quantityInput struct {
	Quantity *float64 `json:"quantity"`
}

// PurchaseSweet godoc
// @Summary Purchase a sweet
// @Description Decrements stock by the requested quantity (default 1). The
// stock check and decrement are a single conditional update, so concurrent
// purchases can never oversell.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "Sweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/{id}/purchase [post]
func PurchaseSweet(c *gin.Context) {
	id := c.Param("id")

	var body quantityInput
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quantity := 1.0
	if body.Quantity != nil {
		quantity = *body.Quantity
	}
	// Rejected before any lookup. The upper bound keeps the value inside
	// int range ahead of the conversion below.
	if quantity != math.Trunc(quantity) || quantity <= 0 || quantity > math.MaxInt32 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Purchase quantity must be a positive integer"})
		return
	}
	qty := int(quantity)

	sweet, err := sweetStore().Purchase(c.Request.Context(), id, qty)
	if err != nil {
		if store.IsSweetNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sweet not found"})
			return
		}
		if store.IsInsufficientStock(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error purchasing sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	invalidateSweetCaches(id)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": utils.PurchaseMessage(qty, sweet.Name),
		"sweet":   sweet,
		"purchaseDetails": gin.H{
			"quantityPurchased": qty,
			"remainingStock":    sweet.Quantity,
		},
	})
}

// RestockSweet godoc
// @Summary Restock a sweet
// @Description Increments stock by the given quantity. Admin only.
// @Tags sweets
// @Accept json
// @Produce json
// @Param id path string true "Sweet ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/sweets/{id}/restock [post]
func RestockSweet(c *gin.Context) {
	id := c.Param("id")

	var body quantityInput
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity is required for restocking"})
		return
	}
	quantity := *body.Quantity
	if quantity != math.Trunc(quantity) || quantity <= 0 || quantity > math.MaxInt32 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restock quantity must be a positive integer"})
		return
	}
	qty := int(quantity)

	sweet, err := sweetStore().Restock(c.Request.Context(), id, qty)
	if err != nil {
		if store.IsSweetNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sweet not found"})
			return
		}
		log.Printf("Error restocking sweet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	invalidateSweetCaches(id)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": utils.RestockMessage(qty, sweet.Name),
		"sweet":   sweet,
		"restockDetails": gin.H{
			"quantityAdded": qty,
			"newStock":      sweet.Quantity,
		},
	})
}
