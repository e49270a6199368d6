package v1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatekit/console/internal/usecase/refdata"
	"github.com/estatekit/console/pkg/logger"
)

// RefDataFeature is the slice of the reference-data use case the handlers need.
type RefDataFeature interface {
	List(ctx context.Context, resource string) (json.RawMessage, error)
	Add(ctx context.Context, resource string, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, resource, id string, body json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, resource, id string) error
}

type refDataRoutes struct {
	t RefDataFeature
	l logger.Interface
}

// NewRefDataRoutes -.
func NewRefDataRoutes(handler *gin.RouterGroup, t RefDataFeature, l logger.Interface) {
	r := &refDataRoutes{t, l}

	h := handler.Group("/refdata")
	{
		h.GET("", r.resources)
		h.GET("/:resource", r.list)
		h.POST("/:resource", r.add)
		h.PATCH("/:resource/:id", r.update)
		h.DELETE("/:resource/:id", r.delete)
	}
}

func (r *refDataRoutes) resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": refdata.Resources()})
}

func (r *refDataRoutes) list(c *gin.Context) {
	body, err := r.t.List(c.Request.Context(), c.Param("resource"))
	if err != nil {
		r.l.Error(err, "http - v1 - refdata - list")
		ErrorResponse(c, err)

		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON, body)
}

func (r *refDataRoutes) add(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ErrorResponse(c, err)

		return
	}

	body, err := r.t.Add(c.Request.Context(), c.Param("resource"), payload)
	if err != nil {
		r.l.Error(err, "http - v1 - refdata - add")
		ErrorResponse(c, err)

		return
	}

	c.Data(http.StatusCreated, gin.MIMEJSON, body)
}

func (r *refDataRoutes) update(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ErrorResponse(c, err)

		return
	}

	body, err := r.t.Update(c.Request.Context(), c.Param("resource"), c.Param("id"), payload)
	if err != nil {
		r.l.Error(err, "http - v1 - refdata - update")
		ErrorResponse(c, err)

		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON, body)
}

func (r *refDataRoutes) delete(c *gin.Context) {
	if err := r.t.Delete(c.Request.Context(), c.Param("resource"), c.Param("id")); err != nil {
		r.l.Error(err, "http - v1 - refdata - delete")
		ErrorResponse(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
