package goal

import "gorm.io/gorm"

// Container is the goal gateway wired over one gorm connection.
type Container struct {
	Repository Repository
	Service    Service
	Handler    *Handler
}

func NewContainer(db *gorm.DB) *Container {
	c := &Container{Repository: NewRepository(db)}
	c.Service = NewService(c.Repository)
	c.Handler = NewHandler(c.Service)
	return c
}
