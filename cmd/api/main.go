package main

import (
	"github.com/saulo-duarte/goaltrack-lambda/internal/container"
	"github.com/saulo-duarte/goaltrack-lambda/internal/router"
	"github.com/saulo-duarte/goaltrack-lambda/internal/server"
)

func main() {
	c := container.NewAPI()

	handler := router.New(router.RouterConfig{
		GoalHandler:    c.GoalContainer.Handler,
		BillingHandler: c.BillingContainer.Handler,
		RequireAuth:    c.Config.GoalsRequireAuth,
	})

	server.Run("goaltrack-api", c.Config.LocalAddr, handler)
}
