package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/middleware"
)

const anonymousActor = "anonymous"

func actorFromContext(c *gin.Context) dto.Actor {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return dto.Actor{ID: anonymousActor}
	}
	return dto.Actor{ID: claims.UserID, Role: string(claims.Role)}
}

func responseMeta(c *gin.Context) map[string]interface{} {
	return middleware.FinalizeMeta(c)
}
