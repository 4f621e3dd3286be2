package domain

// Service услуга парикмахерской (справочные данные)
type Service struct {
	ID                     string
	ShopID                 string
	Name                   string
	AverageDurationMinutes int
	Price                  float64
}

// Catalog service id -> service for one shop
type Catalog map[string]Service

// NewCatalog indexes services by id
func NewCatalog(services []Service) Catalog {
	c := make(Catalog, len(services))
	for _, s := range services {
		c[s.ID] = s
	}
	return c
}

// Duration returns the average duration of the service, or def when the id is nil,
// unknown or carries a non-positive duration. known is false only for a non-nil unknown id.
func (c Catalog) Duration(serviceID *string, def int) (minutes int, known bool) {
	if serviceID == nil {
		return def, true
	}
	s, ok := c[*serviceID]
	if !ok {
		return def, false
	}
	if s.AverageDurationMinutes <= 0 {
		return def, true
	}
	return s.AverageDurationMinutes, true
}

// Lookup returns the service by id
func (c Catalog) Lookup(id string) (Service, bool) {
	s, ok := c[id]
	return s, ok
}
