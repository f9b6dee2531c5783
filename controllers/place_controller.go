package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

const placeSearchEndpoint = "https://nominatim.openstreetmap.org/search"

var placeClient = &http.Client{Timeout: 10 * time.Second}

// SearchPlaces proxies the company-location lookup. It runs on the
// request context, so a search superseded by fresh keystrokes is
// cancelled when the client aborts it.
func SearchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "5")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet,
		placeSearchEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}
	req.Header.Set("User-Agent", "ojt-hours-tracker")

	resp, err := placeClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.Status(http.StatusRequestTimeout)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "place search unavailable"})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "place search unavailable"})
		return
	}

	var results []map[string]any
	if err := json.Unmarshal(body, &results); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "place search unavailable"})
		return
	}
	c.JSON(http.StatusOK, results)
}
