package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(router *gin.Engine, store Querier, logger *logrus.Logger) {
	handler := NewHandler(store, logger)
	router.Use(handler.Recovery())

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/auctions", handler.GetAuctions)
	}
}
