//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// StubVehicle is what the stub answers for GET /vehicles/:id.
type StubVehicle struct {
	ZoneID    string `json:"zone_id"`
	Available bool   `json:"available"`
	Charge    int    `json:"charge"`
}

// StubUpstream serves the vehicle, payment, zone, user and config endpoints
// the service calls and counts the mutating ones.
type StubUpstream struct {
	server *httptest.Server

	mu       sync.Mutex
	vehicles map[int64]StubVehicle
	calls    map[string]int
	amounts  map[string]int64
}

func NewStubUpstream(t *testing.T) *StubUpstream {
	t.Helper()

	s := &StubUpstream{}
	s.Reset()

	r := gin.New()
	r.GET("/vehicles/:id", s.getVehicle)
	r.PUT("/vehicles/:id/:action", s.toggleVehicle)
	r.PUT("/payments/:user/:order/:action", s.settle)
	r.GET("/users/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"has_subscription": false, "trusted": false})
	})
	r.GET("/zones/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"price_multiplier": 60, "price_unlock": 50, "default_deposit": 1000, "offer_ttl_seconds": 300})
	})
	r.GET("/configs/price_coeff_settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"surge": 1.0, "low_charge_discount": 1.0})
	})

	s.server = httptest.NewServer(r)
	t.Cleanup(s.server.Close)
	return s
}

func (s *StubUpstream) URL() string {
	return s.server.URL
}

// Reset restores the default fleet and clears the call counters.
func (s *StubUpstream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = map[int64]StubVehicle{
		101: {ZoneID: "zone-a", Available: true, Charge: 80},
		102: {ZoneID: "zone-b", Available: true, Charge: 15},
	}
	s.calls = map[string]int{}
	s.amounts = map[string]int64{}
}

func (s *StubUpstream) SetVehicle(id int64, v StubVehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[id] = v
}

// Calls returns how often action ("lock", "unlock", "hold", "clear") was invoked.
func (s *StubUpstream) Calls(action string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[action]
}

// LastAmount returns the amount of the last hold or clear.
func (s *StubUpstream) LastAmount(action string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.amounts[action]
}

func (s *StubUpstream) getVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	v, ok := s.vehicles[id]
	s.mu.Unlock()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (s *StubUpstream) toggleVehicle(c *gin.Context) {
	action := c.Param("action")
	if action != "lock" && action != "unlock" {
		c.Status(http.StatusNotFound)
		return
	}
	s.mu.Lock()
	s.calls[action]++
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *StubUpstream) settle(c *gin.Context) {
	action := c.Param("action")
	amount, _ := strconv.ParseInt(c.Query("amount"), 10, 64)
	s.mu.Lock()
	s.calls[action]++
	s.amounts[action] = amount
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
