package checkout

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(provider Provider) *Container {
	service := NewService(provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
