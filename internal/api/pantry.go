// Package api exposes the engine over HTTP for the surrounding meal-planning
// application. Handlers are thin: fetch collections from the store, call the
// engine, write results back. No matching or conversion logic lives here.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"larder/internal/engine"
	"larder/internal/metrics"
	"larder/internal/models"
	"larder/internal/store"
)

// PantryAPI represents the main API handler for the pantry service.
type PantryAPI struct {
	Router   *gin.Engine
	store    *store.Store
	metrics  *metrics.Collector
	resolver engine.Resolver
	log      *zap.Logger
}

// NewPantryAPI creates a new pantry API instance.
func NewPantryAPI(st *store.Store, mc *metrics.Collector, resolver engine.Resolver, log *zap.Logger) *PantryAPI {
	router := gin.Default()

	api := &PantryAPI{
		Router:   router,
		store:    st,
		metrics:  mc,
		resolver: resolver,
		log:      log,
	}

	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (p *PantryAPI) setupRoutes() {
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "larder API is running"})
	})

	v1 := p.Router.Group("/api/v1")
	{
		// Inventory management
		v1.GET("/inventory", p.GetInventory)
		v1.POST("/inventory", p.AddInventoryEntry)
		v1.POST("/inventory/deplete", p.DepleteInventory)

		// Engine operations
		v1.POST("/resolve", p.ResolveIngredient)
		v1.POST("/convert", p.ConvertUnit)
		v1.POST("/convert/system", p.ConvertToSystem)

		// Grocery list
		v1.GET("/grocery", p.GetGrocery)
		v1.POST("/grocery", p.AddGroceryItem)
		v1.POST("/grocery/consolidate", p.ConsolidateGrocery)
	}
}

// Inventory handlers

func (p *PantryAPI) GetInventory(c *gin.Context) {
	entries, err := p.store.ListInventory()
	if err != nil {
		p.log.Error("list inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (p *PantryAPI) AddInventoryEntry(c *gin.Context) {
	var entry models.InventoryEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := p.store.SaveInventoryEntry(&entry); err != nil {
		p.log.Error("save inventory entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DepleteRequest subtracts a used quantity from matching stock.
type DepleteRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount string  `json:"amount"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

func (p *PantryAPI) DepleteInventory(c *gin.Context) {
	var req DepleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value := req.Value
	unit := req.Unit
	if req.Amount != "" {
		parsed := engine.ParseAmount(req.Amount)
		if parsed.Value == 0 {
			p.metrics.RecordParseFallback()
		}
		value = parsed.Value
		if unit == "" {
			unit = parsed.UnitHint
		}
	}

	entry, ok, err := p.store.Deplete(req.Name, models.Quantity{Value: value, Unit: unit})
	if err != nil {
		p.log.Error("deplete inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no matching entry or units not reconcilable"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Engine handlers

// ResolveRequest asks whether the pantry covers an ingredient need. Amount
// is free text ("1 1/2", "2-3"); Unit may be any known synonym.
type ResolveRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// ResolveResponse is the JSON shape of an AvailabilityResult.
type ResolveResponse struct {
	Match         string                 `json:"match"`
	MatchedName   string                 `json:"matched_name,omitempty"`
	Original      string                 `json:"original,omitempty"`
	Sufficient    bool                   `json:"sufficient"`
	Indeterminate bool                   `json:"indeterminate"`
	Remaining     *RemainingQuantity     `json:"remaining,omitempty"`
	Entry         *models.InventoryEntry `json:"entry,omitempty"`
}

// RemainingQuantity is a display-clamped remaining amount.
type RemainingQuantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (p *PantryAPI) ResolveIngredient(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inventory, err := p.store.ListInventory()
	if err != nil {
		p.log.Error("list inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	request := models.IngredientRequest{Name: req.Name}
	if req.Amount != "" || req.Unit != "" {
		parsed := engine.ParseAmount(req.Amount)
		if req.Amount != "" && parsed.Value == 0 {
			p.metrics.RecordParseFallback()
		}
		unit := req.Unit
		if unit == "" {
			unit = parsed.UnitHint
		}
		request.Quantity = &models.Quantity{Value: parsed.Value, Unit: unit}
	}

	result := p.resolver.Resolve(request, inventory)
	p.metrics.RecordMatch(result.Match.Kind.String())
	p.metrics.RecordResolution(result.Outcome())

	resp := ResolveResponse{
		Match:         result.Match.Kind.String(),
		Original:      result.Match.Original,
		Sufficient:    result.Sufficient,
		Indeterminate: result.Indeterminate,
		Entry:         result.Match.Entry,
	}
	if result.Match.Entry != nil {
		resp.MatchedName = result.Match.Entry.Name
	}
	if result.Remaining != nil {
		// Clamp for display; the engine reports the raw difference.
		value := result.Remaining.Value
		if value < 0 {
			value = 0
		}
		resp.Remaining = &RemainingQuantity{Value: value, Unit: result.Remaining.Unit}
	}
	c.JSON(http.StatusOK, resp)
}

// ConvertRequest converts a value between two unit spellings.
type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required"`
	To    string  `json:"to" binding:"required"`
}

func (p *PantryAPI) ConvertUnit(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, okFrom := engine.ToCanonical(req.From)
	to, okTo := engine.ToCanonical(req.To)
	if !okFrom || !okTo {
		p.metrics.RecordConversion("unknown_unit")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown unit"})
		return
	}

	converted, ok := engine.Convert(req.Value, from, to)
	if !ok {
		p.metrics.RecordConversion("incompatible")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "incompatible measure classes"})
		return
	}
	p.metrics.RecordConversion("ok")

	c.JSON(http.StatusOK, gin.H{
		"value":   converted,
		"unit":    to,
		"display": engine.FormatConverted(converted),
	})
}

// ConvertSystemRequest converts a value into a target system's preferred unit.
type ConvertSystemRequest struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit" binding:"required"`
	System string  `json:"system" binding:"required"`
}

func (p *PantryAPI) ConvertToSystem(c *gin.Context) {
	var req ConvertSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, ok := engine.ToCanonical(req.Unit)
	if !ok {
		p.metrics.RecordConversion("unknown_unit")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown unit"})
		return
	}

	var system engine.UnitSystem
	switch req.System {
	case "metric":
		system = engine.SystemMetric
	case "imperial":
		system = engine.SystemImperial
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "system must be metric or imperial"})
		return
	}

	value, outUnit := engine.ConvertToSystem(req.Value, unit, system)
	p.metrics.RecordConversion("ok")
	c.JSON(http.StatusOK, gin.H{
		"value":   value,
		"unit":    outUnit,
		"display": engine.FormatConverted(value),
	})
}

// Grocery handlers

func (p *PantryAPI) GetGrocery(c *gin.Context) {
	entries, err := p.store.ListGrocery()
	if err != nil {
		p.log.Error("list grocery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (p *PantryAPI) AddGroceryItem(c *gin.Context) {
	var item models.GroceryEntry
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := p.store.ListGrocery()
	if err != nil {
		p.log.Error("list grocery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	merged := engine.AddOrMerge(list, item)
	if err := p.store.ReplaceGrocery(merged); err != nil {
		p.log.Error("write grocery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, merged)
}

func (p *PantryAPI) ConsolidateGrocery(c *gin.Context) {
	list, err := p.store.ListGrocery()
	if err != nil {
		p.log.Error("list grocery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	consolidated := engine.Consolidate(list)
	if err := p.store.ReplaceGrocery(consolidated); err != nil {
		p.log.Error("write grocery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	p.metrics.RecordConsolidation()

	p.log.Info("consolidated grocery list",
		zap.Int("before", len(list)),
		zap.Int("after", len(consolidated)))
	c.JSON(http.StatusOK, consolidated)
}
