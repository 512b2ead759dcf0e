package handler

import (
	"github.com/gin-gonic/gin"
)

// Routes bundles the handlers mounted under the API prefix.
type Routes struct {
	Resources *ResourceHandler
	Exports   *ExportHandler
	Metrics   *MetricsHandler
	// Auth runs in front of every API route; nil leaves routes open.
	Auth gin.HandlerFunc
}

// Register mounts the API on router.
func (r Routes) Register(router gin.IRouter, prefix string) {
	if r.Metrics != nil {
		router.GET("/health", r.Metrics.Health)
		router.GET("/ready", r.Metrics.Ready)
		router.GET("/metrics", r.Metrics.Prometheus)
	}

	api := router.Group(prefix)
	if r.Auth != nil {
		api.Use(r.Auth)
	}
	if r.Metrics != nil {
		api.GET("/metrics/summary", r.Metrics.Summary)
	}

	if r.Resources != nil {
		api.GET("/resources", r.Resources.Catalog)
		resources := api.Group("/resources/:resource")
		resources.GET("", r.Resources.List)
		resources.GET("/:id", r.Resources.Get)
		resources.PATCH("/:id/status", r.Resources.Transition)
		resources.GET("/:id/history", r.Resources.History)
	}

	if r.Exports != nil {
		exports := api.Group("/exports")
		exports.POST("", r.Exports.Create)
		exports.GET("", r.Exports.List)
		exports.GET("/:id", r.Exports.Status)
		exports.GET("/:id/download", r.Exports.Download)
	}
}
