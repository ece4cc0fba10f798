package adapter

import (
	"context"
	"net/http"

	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/gin-gonic/gin"
)

type ginRequest struct {
	c *gin.Context
}

func (g *ginRequest) Body(context.Context) ([]byte, error) {
	return g.c.GetRawData()
}

func (g *ginRequest) SignatureHeader() string {
	return g.c.GetHeader(webhook.HeaderSignature)
}

func (g *ginRequest) Respond() error {
	g.c.String(http.StatusOK, ack)
	return nil
}

// AdaptGin expects (*gin.Context).
func AdaptGin(args ...any) (webhook.Request, error) {
	if len(args) != 1 {
		return nil, unsupported(webhook.FrameworkGin, "*gin.Context", args)
	}
	c, ok := args[0].(*gin.Context)
	if !ok || c == nil {
		return nil, unsupported(webhook.FrameworkGin, "*gin.Context", args)
	}
	return &ginRequest{c: c}, nil
}

func Gin(d *webhook.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := webhook.Handle(ctx, d, &ginRequest{c: c}); err != nil {
			httpErr := toHTTPError(err)
			xerrors.Log(ctx, httpErr)
			_ = c.Error(err)
			c.AbortWithStatusJSON(httpErr.StatusCode, gin.H{"message": httpErr.Message})
		}
	}
}
