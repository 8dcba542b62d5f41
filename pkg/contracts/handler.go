package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every domain handler so the application
// can assemble the router from independent route groups.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
