package catalog

import "errors"

var ErrServiceNotFound = errors.New("service not found")

// Find returns the service with id, or ErrServiceNotFound
func Find(services []Service, id int64) (*Service, error) {
	for i := range services {
		if services[i].ID == id {
			return &services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}
