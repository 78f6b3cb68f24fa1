package main

import (
	"github.com/saulo-duarte/goaltrack-lambda/internal/container"
	"github.com/saulo-duarte/goaltrack-lambda/internal/router"
	"github.com/saulo-duarte/goaltrack-lambda/internal/server"
)

func main() {
	c := container.NewCheckout()

	handler := router.NewCheckout(router.CheckoutRouterConfig{
		CheckoutHandler: c.CheckoutContainer.Handler,
		WebhookHandler:  c.WebhookHandler,
	})

	server.Run("goaltrack-checkout", c.Config.LocalAddr, handler)
}
