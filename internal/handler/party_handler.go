package handler

import (
	"log"
	"net/http"
	"strconv"

	"election-dashboard-go/internal/party"
	"election-dashboard-go/pkg/model"

	"github.com/gin-gonic/gin"
)

// PartyHandler handles party-related HTTP requests
type PartyHandler struct {
	partyService *party.PartyService
	blankAsZero  bool
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(partyService *party.PartyService, blankAsZero bool) *PartyHandler {
	return &PartyHandler{
		partyService: partyService,
		blankAsZero:  blankAsZero,
	}
}

// GetParties handles GET /api/parties
func (h *PartyHandler) GetParties(c *gin.Context) {
	parties, err := h.partyService.ListParties()
	if err != nil {
		log.Printf("Error fetching parties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch parties"})
		return
	}

	c.JSON(http.StatusOK, parties)
}

// GetPartiesWithBreakdown handles GET /api/parties/breakdown
func (h *PartyHandler) GetPartiesWithBreakdown(c *gin.Context) {
	parties, err := h.partyService.ListPartiesWithLocations()
	if err != nil {
		log.Printf("Error fetching party breakdown: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch party breakdown"})
		return
	}

	c.JSON(http.StatusOK, parties)
}

// GetTopParties handles GET /api/parties/top
func (h *PartyHandler) GetTopParties(c *gin.Context) {
	parties, err := h.partyService.TopPartiesByVotes()
	if err != nil {
		log.Printf("Error fetching top parties: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch top parties"})
		return
	}

	c.JSON(http.StatusOK, parties)
}

// GetRegions handles GET /api/regions
func (h *PartyHandler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, model.Regions)
}

// GetTopPartiesByRegion handles GET /api/regions/:code/top
func (h *PartyHandler) GetTopPartiesByRegion(c *gin.Context) {
	standings, err := h.partyService.TopPartiesByRegion(c.Param("code"))
	if err != nil {
		if err.Error() == "region code is required" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Region code is required"})
			return
		}
		log.Printf("Error fetching region standings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to fetch region standings"})
		return
	}

	c.JSON(http.StatusOK, standings)
}

// UpdateParty handles PUT /api/parties/:id
func (h *PartyHandler) UpdateParty(c *gin.Context) {
	partyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid party ID"})
		return
	}

	var req model.PartyTotalsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	numberOfVoting, err := party.ParseCount(req.NumberOfVoting, h.blankAsZero)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "numberOfVoting: " + err.Error()})
		return
	}
	thisElecChairs, err := party.ParseCount(req.ThisElecChairs, h.blankAsZero)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "thisElecChairs: " + err.Error()})
		return
	}

	if err := h.partyService.UpdatePartyTotals(partyID, numberOfVoting, thisElecChairs); err != nil {
		if err.Error() == "party not found" {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Party not found"})
			return
		}
		log.Printf("Error updating party %d: %v", partyID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update party"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                    true,
		"id":                    partyID,
		"numberOfVoting":        numberOfVoting,
		"thisElecChairs":        thisElecChairs,
		"numberOfVotingDisplay": party.FormatCount(numberOfVoting),
	})
}

// UpdatePartyRegion handles PUT /api/parties/:id/regions/:code
func (h *PartyHandler) UpdatePartyRegion(c *gin.Context) {
	partyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid party ID"})
		return
	}

	var req model.RegionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	numberOfVoting, err := party.ParseCount(req.NumberOfVoting, h.blankAsZero)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "numberOfVoting: " + err.Error()})
		return
	}
	thisElecChairs, err := party.ParseCount(req.ThisElecChairs, h.blankAsZero)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "thisElecChairs: " + err.Error()})
		return
	}

	regionCode, err := h.partyService.UpsertPartyRegion(partyID, c.Param("code"), numberOfVoting, thisElecChairs)
	if err != nil {
		switch err.Error() {
		case "party not found":
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Party not found"})
		case "region code is required":
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Region code is required"})
		default:
			log.Printf("Error updating region for party %d: %v", partyID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to update party region"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                    true,
		"id":                    partyID,
		"regionCode":            regionCode,
		"numberOfVoting":        numberOfVoting,
		"thisElecChairs":        thisElecChairs,
		"numberOfVotingDisplay": party.FormatCount(numberOfVoting),
	})
}

// LoadPartyRegion handles GET /api/parties/:id/regions/:code
func (h *PartyHandler) LoadPartyRegion(c *gin.Context) {
	partyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid party ID"})
		return
	}

	counters, err := h.partyService.LoadPartyRegion(partyID, c.Param("code"))
	if err != nil {
		switch err.Error() {
		case "party id is required", "region code is required":
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		default:
			log.Printf("Error loading region for party %d: %v", partyID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to load party region"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"id":             partyID,
		"numberOfVoting": counters.NumberOfVoting,
		"thisElecChairs": counters.ThisElecChairs,
		"exists":         counters.Exists,
	})
}
