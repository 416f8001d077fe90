package graph

import (
	"context"
	"fmt"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
)

// NewServer serves exec over gqlgen's HTTP transports: POST with a JSON
// body, GET with URL parameters (queries only) and OPTIONS. Introspection is
// on so the playground can load the schema.
func NewServer(exec *Executor, log logger.Logger) *handler.Server {
	if log == nil {
		log = logger.Nop()
	}
	srv := handler.New(exec)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.Use(extension.Introspection{})

	srv.SetRecoverFunc(func(ctx context.Context, err any) error {
		log.Error("graphql request panicked", "panic", fmt.Sprint(err))
		return &gqlerror.Error{
			Message:    internalMessage,
			Extensions: map[string]any{"code": CodeInternal},
		}
	})
	return srv
}
