// Package refdata exposes CRUD over the platform's reference-data entities.
// Every back-office screen goes through the same four operations; only the
// resource differs.
package refdata

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/estatekit/console/pkg/logger"
)

// ErrUnknownResource is returned for a resource slug outside the catalog.
var ErrUnknownResource = errors.New("unknown reference resource")

// catalog maps the console's resource slugs to platform API paths.
var catalog = map[string]string{
	"blood-groups":        "bloodgroup",
	"categories":          "category",
	"financial-years":     "financialyear",
	"holiday-types":       "holidaytype",
	"leave-types":         "leavetype",
	"face-directions":     "facedirection",
	"amenities":           "amenity",
	"facilities":          "facility",
	"furnishing-statuses": "furnishingstatus",
	"prefixes":            "prefix",
	"organizations":       "organization",
	"branches":            "branch",
	"designations":        "designation",
	"departments":         "department",
	"employees":           "employee",
	"customers":           "customer",
	"leads":               "lead",
	"projects":            "project",
	"properties":          "property",
	"users":               "user",
}

// UpstreamAPI is the slice of the platform client the use case needs.
type UpstreamAPI interface {
	List(ctx context.Context, path string) (json.RawMessage, error)
	Create(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, path, id string, body json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, path, id string) error
}

// UseCase -.
type UseCase struct {
	api UpstreamAPI
	log logger.Interface
}

// New -.
func New(api UpstreamAPI, log logger.Interface) *UseCase {
	return &UseCase{api: api, log: log}
}

// Resources returns the catalog slugs, for the shell's navigation tree.
func Resources() []string {
	slugs := make([]string, 0, len(catalog))
	for slug := range catalog {
		slugs = append(slugs, slug)
	}

	return slugs
}

// List fetches all records of a resource.
func (uc *UseCase) List(ctx context.Context, resource string) (json.RawMessage, error) {
	path, ok := catalog[resource]
	if !ok {
		return nil, ErrUnknownResource
	}

	return uc.api.List(ctx, path)
}

// Add creates a record.
func (uc *UseCase) Add(ctx context.Context, resource string, body json.RawMessage) (json.RawMessage, error) {
	path, ok := catalog[resource]
	if !ok {
		return nil, ErrUnknownResource
	}

	return uc.api.Create(ctx, path, body)
}

// Update modifies a record by id.
func (uc *UseCase) Update(ctx context.Context, resource, id string, body json.RawMessage) (json.RawMessage, error) {
	path, ok := catalog[resource]
	if !ok {
		return nil, ErrUnknownResource
	}

	return uc.api.Update(ctx, path, id, body)
}

// Delete removes a record by id.
func (uc *UseCase) Delete(ctx context.Context, resource, id string) error {
	path, ok := catalog[resource]
	if !ok {
		return ErrUnknownResource
	}

	return uc.api.Delete(ctx, path, id)
}
