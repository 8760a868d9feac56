package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/shopsight/internal/dataset"
	"github.com/matthieukhl/shopsight/internal/reports"
)

type Server struct {
	router *gin.Engine
	data   *dataset.Dataset
}

// NewServer creates a new server instance over a loaded dataset snapshot
func NewServer(data *dataset.Dataset) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		data:   data,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/reports", s.listReports)
		api.GET("/reports/:name", s.runReport)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "shopsight",
		"version": "0.1.0",
		"rows":    s.data.Len(),
	})
}

// listReports returns the report catalog
func (s *Server) listReports(c *gin.Context) {
	catalog := reports.Catalog()
	out := make([]gin.H, 0, len(catalog))
	for _, r := range catalog {
		out = append(out, gin.H{
			"name":        r.Name,
			"description": r.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// runReport executes one report and returns its rows as a JSON array.
// An empty result set is a 200 with an empty array, not an error.
func (s *Server) runReport(c *gin.Context) {
	report, err := reports.ByName(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report.Name,
		"rows":   report.Run(s.data),
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
