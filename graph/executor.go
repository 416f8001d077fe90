package graph

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
	"github.com/Tanmoy095/LogiSynapse/service"
)

//go:embed schema.graphqls
var schemaSource string

// Schema is the parsed shipment schema, shared by every executor.
var Schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSource})

// jsonAPI flattens resolver results; numbers stay json.Number so Int and
// Float values survive untouched.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// rootField resolves one Query or Mutation field from its coerced arguments.
type rootField func(ctx context.Context, args map[string]any) (any, error)

// Executor is the graphql.ExecutableSchema behind the gqlgen server. The
// server parses, validates and coerces variables; the executor resolves root
// fields and shapes each result to the request's selection set.
type Executor struct {
	schema    *ast.Schema
	queries   map[string]rootField
	mutations map[string]rootField
	logger    logger.Logger
}

var _ graphql.ExecutableSchema = (*Executor)(nil)

// NewExecutor serves the schema from api. Pass auth.Guard to enforce roles.
func NewExecutor(api service.ShipmentAPI, log logger.Logger) *Executor {
	if log == nil {
		log = logger.Nop()
	}
	r := NewResolver(api)
	return &Executor{
		schema:    Schema,
		queries:   r.queryFields(),
		mutations: r.mutationFields(),
		logger:    log,
	}
}

func (e *Executor) Schema() *ast.Schema {
	return e.schema
}

// Complexity leaves every field at gqlgen's default cost.
func (e *Executor) Complexity(ctx context.Context, typeName, fieldName string, childComplexity int, args map[string]any) (int, bool) {
	return 0, false
}

// Exec runs the operation stored in ctx by the gqlgen executor.
func (e *Executor) Exec(ctx context.Context) graphql.ResponseHandler {
	return graphql.OneShot(e.run(ctx, graphql.GetOperationContext(ctx)))
}

// run resolves the operation's root fields in document order, one at a time.
func (e *Executor) run(ctx context.Context, opCtx *graphql.OperationContext) *graphql.Response {
	rootType, fields := "Query", e.queries
	switch opCtx.Operation.Operation {
	case ast.Query:
	case ast.Mutation:
		rootType, fields = "Mutation", e.mutations
	default:
		return &graphql.Response{Errors: gqlerror.List{{
			Message:    "unsupported operation type " + string(opCtx.Operation.Operation),
			Extensions: map[string]any{"code": CodeBadRequest},
		}}}
	}

	ex := &execution{executor: e, opCtx: opCtx}
	data := newOrderedMap()
	nullData := false

	for _, field := range ex.collectFields(opCtx.Operation.SelectionSet, rootType) {
		path := ast.Path{ast.PathName(field.Alias)}

		switch field.Name {
		case "__typename":
			data.set(field.Alias, rootType)
			continue
		case "__schema", "__type":
			data.set(field.Alias, ex.introspectRoot(field, path))
			continue
		}

		resolve, ok := fields[field.Name]
		if !ok {
			ex.fail(field.Field, path, CodeInternal, internalMessage)
			data.set(field.Alias, nil)
			continue
		}

		nonNull := field.Definition.Type.NonNull
		value, err := resolve(ctx, field.ArgumentMap(opCtx.Variables))
		if err == nil {
			value, err = ex.complete(field.Definition.Type, field.Selections, value)
		}
		if err != nil {
			ex.resolverError(field.Field, path, err)
			data.set(field.Alias, nil)
			nullData = nullData || nonNull
			continue
		}
		if value == nil && nonNull {
			ex.fail(field.Field, path, CodeInternal, "non-null field "+field.Name+" resolved to null")
			nullData = true
		}
		data.set(field.Alias, value)
	}

	resp := &graphql.Response{Errors: ex.errors}
	if nullData {
		resp.Data = json.RawMessage("null")
		return resp
	}
	raw, err := jsonAPI.Marshal(data)
	if err != nil {
		e.logger.Error("failed to encode graphql result", "error", err)
		resp.Data = json.RawMessage("null")
		resp.Errors = append(resp.Errors, &gqlerror.Error{
			Message:    internalMessage,
			Extensions: map[string]any{"code": CodeInternal},
		})
		return resp
	}
	resp.Data = raw
	return resp
}

// execution is the per-request state of run.
type execution struct {
	executor *Executor
	opCtx    *graphql.OperationContext
	errors   gqlerror.List
}

// collectFields applies fragments and @skip/@include for an object of
// typeName. Every type in the schema is concrete, so it satisfies only itself.
func (ex *execution) collectFields(set ast.SelectionSet, typeName string) []graphql.CollectedField {
	return graphql.CollectFields(ex.opCtx, set, []string{typeName})
}

func (ex *execution) introspectRoot(field graphql.CollectedField, path ast.Path) any {
	if ex.opCtx.DisableIntrospection {
		ex.fail(field.Field, path, CodeBadRequest, "introspection disabled")
		return nil
	}
	schema := ex.executor.schema
	if field.Name == "__schema" {
		return ex.introspect(field.Definition.Type, field.Selections, introspection.WrapSchema(schema))
	}
	name, _ := field.ArgumentMap(ex.opCtx.Variables)["name"].(string)
	def := schema.Types[name]
	if def == nil {
		return nil
	}
	return ex.introspect(field.Definition.Type, field.Selections, introspection.WrapTypeFromDef(schema, def))
}

// complete turns a resolver value into the response shape: the value is
// flattened to plain JSON data and then cut down to the selected fields.
func (ex *execution) complete(t *ast.Type, sel ast.SelectionSet, value any) (any, error) {
	raw, err := jsonAPI.Marshal(value)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := jsonAPI.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return ex.project(t, sel, generic), nil
}

func (ex *execution) project(t *ast.Type, sel ast.SelectionSet, value any) any {
	if value == nil {
		return nil
	}
	if t.Elem != nil {
		items, ok := value.([]any)
		if !ok {
			return nil
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ex.project(t.Elem, sel, item)
		}
		return out
	}

	def := ex.executor.schema.Types[t.NamedType]
	if def == nil || def.Kind != ast.Object {
		return value
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	out := newOrderedMap()
	for _, field := range ex.collectFields(sel, def.Name) {
		if field.Name == "__typename" {
			out.set(field.Alias, def.Name)
			continue
		}
		fd := def.Fields.ForName(field.Name)
		if fd == nil {
			out.set(field.Alias, nil)
			continue
		}
		out.set(field.Alias, ex.project(fd.Type, field.Selections, obj[field.Name]))
	}
	return out
}

func (ex *execution) resolverError(f *ast.Field, path ast.Path, err error) {
	code, msg := classify(err)
	if code == CodeInternal {
		ex.executor.logger.Error("graphql resolver failed", "field", f.Name, "error", err)
	}
	ex.fail(f, path, code, msg)
}

func (ex *execution) fail(f *ast.Field, path ast.Path, code, msg string) {
	gqlErr := &gqlerror.Error{
		Message:    msg,
		Path:       path,
		Extensions: map[string]any{"code": code},
	}
	if f.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: f.Position.Line, Column: f.Position.Column}}
	}
	ex.errors = append(ex.errors, gqlErr)
}

// orderedMap is a JSON object that keeps insertion order, so responses
// list fields in the order the query asked for them.
type orderedMap struct {
	keys   []string
	values map[string]any
}

func newOrderedMap() *orderedMap {
	return &orderedMap{values: map[string]any{}}
}

func (m *orderedMap) set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *orderedMap) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, key := range m.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteVal(m.values[key])
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}
