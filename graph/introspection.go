package graph

import (
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
)

// introspect shapes gqlgen's introspection wrappers to the selection set.
// The wrappers expose methods rather than data, so each field is read
// through introspectionField instead of the JSON flattening in complete.
func (ex *execution) introspect(t *ast.Type, sel ast.SelectionSet, value any) any {
	if value == nil {
		return nil
	}
	if t.Elem != nil {
		items := introspectionList(value)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ex.introspect(t.Elem, sel, item)
		}
		return out
	}

	def := ex.executor.schema.Types[t.NamedType]
	if def == nil || def.Kind != ast.Object {
		return value
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
		v := introspectionField(value, field.Name, field.ArgumentMap(ex.opCtx.Variables))
		out.set(field.Alias, ex.introspect(fd.Type, field.Selections, v))
	}
	return out
}

// introspectionField reads one field of an introspection object. Nil
// pointers come back as an untyped nil.
func introspectionField(obj any, name string, args map[string]any) any {
	includeDeprecated, _ := args["includeDeprecated"].(bool)

	switch o := obj.(type) {
	case *introspection.Schema:
		switch name {
		case "description":
			return optional(o.Description())
		case "types":
			return o.Types()
		case "queryType":
			return typeOrNil(o.QueryType())
		case "mutationType":
			return typeOrNil(o.MutationType())
		case "subscriptionType":
			return typeOrNil(o.SubscriptionType())
		case "directives":
			return o.Directives()
		}
	case *introspection.Type:
		switch name {
		case "kind":
			return o.Kind()
		case "name":
			return optional(o.Name())
		case "description":
			return optional(o.Description())
		case "specifiedByURL":
			return optional(o.SpecifiedByURL())
		case "fields":
			return o.Fields(includeDeprecated)
		case "interfaces":
			return o.Interfaces()
		case "possibleTypes":
			return o.PossibleTypes()
		case "enumValues":
			return o.EnumValues(includeDeprecated)
		case "inputFields":
			return o.InputFields()
		case "ofType":
			return typeOrNil(o.OfType())
		case "isOneOf":
			return o.IsOneOf()
		}
	case *introspection.Field:
		switch name {
		case "name":
			return o.Name
		case "description":
			return optional(o.Description())
		case "args":
			return o.Args
		case "type":
			return typeOrNil(o.Type)
		case "isDeprecated":
			return o.IsDeprecated()
		case "deprecationReason":
			return optional(o.DeprecationReason())
		}
	case *introspection.InputValue:
		switch name {
		case "name":
			return o.Name
		case "description":
			return optional(o.Description())
		case "type":
			return typeOrNil(o.Type)
		case "defaultValue":
			return optional(o.DefaultValue)
		case "isDeprecated":
			return o.IsDeprecated()
		case "deprecationReason":
			return optional(o.DeprecationReason())
		}
	case *introspection.EnumValue:
		switch name {
		case "name":
			return o.Name
		case "description":
			return optional(o.Description())
		case "isDeprecated":
			return o.IsDeprecated()
		case "deprecationReason":
			return optional(o.DeprecationReason())
		}
	case *introspection.Directive:
		switch name {
		case "name":
			return o.Name
		case "description":
			return optional(o.Description())
		case "isRepeatable":
			return o.IsRepeatable
		case "locations":
			return o.Locations
		case "args":
			return o.Args
		}
	}
	return nil
}

// introspectionList turns a wrapper slice into list items. A nil slice is
// an empty list.
func introspectionList(value any) []any {
	switch v := value.(type) {
	case []introspection.Type:
		return pointers(v)
	case []introspection.Field:
		return pointers(v)
	case []introspection.InputValue:
		return pointers(v)
	case []introspection.EnumValue:
		return pointers(v)
	case []introspection.Directive:
		return pointers(v)
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	}
	return []any{}
}

func pointers[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func typeOrNil(t *introspection.Type) any {
	if t == nil {
		return nil
	}
	return t
}
