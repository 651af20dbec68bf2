package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnresolvedRef is returned when a $ref names no known component.
var ErrUnresolvedRef = errors.New("unresolved reference")

var refPrefixes = map[string][]string{
	"schemas":       {"#/components/schemas/", "#/definitions/"},
	"parameters":    {"#/components/parameters/", "#/parameters/"},
	"requestBodies": {"#/components/requestBodies/"},
	"responses":     {"#/components/responses/", "#/responses/"},
}

// refName extracts the component name from a $ref, e.g.
// "#/components/schemas/Pet" with kind "schemas" returns "Pet".
func refName(ref, kind string) (string, bool) {
	for _, prefix := range refPrefixes[kind] {
		if name, ok := strings.CutPrefix(ref, prefix); ok {
			return name, true
		}
	}
	return "", false
}

// ResolveReferences replaces $ref parameters, request bodies, responses and
// schemas with the components they name. A document without components is
// left untouched.
func ResolveReferences(doc *APIDocument) error {
	if doc.Components == nil {
		return nil
	}
	r := resolver{c: doc.Components}

	for i := range doc.Endpoints {
		ep := &doc.Endpoints[i]

		for j, param := range ep.Parameters {
			if param == nil {
				continue
			}
			resolved, err := r.parameter(param)
			if err != nil {
				return err
			}
			ep.Parameters[j] = resolved
		}

		if ep.RequestBody != nil {
			body, err := r.requestBody(ep.RequestBody)
			if err != nil {
				return err
			}
			ep.RequestBody = body
		}

		codes := make([]string, 0, len(ep.Responses))
		for code := range ep.Responses {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			resp := ep.Responses[code]
			if resp == nil {
				continue
			}
			resolved, err := r.response(resp)
			if err != nil {
				return err
			}
			ep.Responses[code] = resolved
		}
	}
	return nil
}

type resolver struct {
	c *Components
}

func (r resolver) parameter(p *Parameter) (*Parameter, error) {
	if p.Ref != "" {
		name, _ := refName(p.Ref, "parameters")
		resolved, ok := r.c.Parameters[name]
		if !ok || resolved == nil {
			return nil, fmt.Errorf("%w: parameter %s", ErrUnresolvedRef, p.Ref)
		}
		p = resolved
	}
	if err := r.schema(&p.Schema); err != nil {
		return nil, err
	}
	return p, nil
}

func (r resolver) requestBody(b *RequestBody) (*RequestBody, error) {
	if b.Ref != "" {
		name, _ := refName(b.Ref, "requestBodies")
		resolved, ok := r.c.RequestBodies[name]
		if !ok || resolved == nil {
			return nil, fmt.Errorf("%w: requestBody %s", ErrUnresolvedRef, b.Ref)
		}
		b = resolved
	}
	if err := r.content(b.Content); err != nil {
		return nil, err
	}
	return b, nil
}

func (r resolver) response(resp *Response) (*Response, error) {
	if resp.Ref != "" {
		name, _ := refName(resp.Ref, "responses")
		resolved, ok := r.c.Responses[name]
		if !ok || resolved == nil {
			return nil, fmt.Errorf("%w: response %s", ErrUnresolvedRef, resp.Ref)
		}
		resp = resolved
	}
	if err := r.schema(&resp.Schema); err != nil {
		return nil, err
	}
	if err := r.content(resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r resolver) content(content map[string]*MediaType) error {
	for _, mt := range content {
		if mt == nil {
			continue
		}
		if err := r.schema(&mt.Schema); err != nil {
			return err
		}
	}
	return nil
}

// schema resolves *s in place. Array item schemas are resolved one level deep.
func (r resolver) schema(s **Schema) error {
	if *s == nil {
		return nil
	}
	if (*s).Ref != "" {
		name, _ := refName((*s).Ref, "schemas")
		resolved, ok := r.c.Schemas[name]
		if !ok || resolved == nil {
			return fmt.Errorf("%w: schema %s", ErrUnresolvedRef, (*s).Ref)
		}
		*s = resolved
	}
	if items := (*s).Items; items != nil && items.Ref != "" {
		return r.schema(&(*s).Items)
	}
	return nil
}
