// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/archanaram372-sh/WhatIContain/platform/config"
	"github.com/archanaram372-sh/WhatIContain/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// RouterContext carries the route groups modules register themselves on.
type RouterContext struct {
	// API is the versioned API group (/api/v1).
	API *gin.RouterGroup
}

// Module is an HTTP-facing domain module.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and rate limit settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
