package openapi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON API description from path.
func Load(path string) (*APIDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a Swagger 2.0, OpenAPI 3 or simplified document. JSON input
// is accepted since it is valid YAML. An empty input yields an empty document.
func Parse(data []byte) (*APIDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &APIDocument{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse api description: %w", err)
	}

	switch {
	case raw["swagger"] != nil:
		var sw swaggerSpec
		if err := yaml.Unmarshal(data, &sw); err != nil {
			return nil, fmt.Errorf("failed to parse swagger document: %w", err)
		}
		return fromSwagger(sw), nil
	case raw["openapi"] != nil:
		var oa openAPISpec
		if err := yaml.Unmarshal(data, &oa); err != nil {
			return nil, fmt.Errorf("failed to parse openapi document: %w", err)
		}
		return fromOpenAPI(oa), nil
	}

	var doc APIDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse api document: %w", err)
	}
	return &doc, nil
}

func fromSwagger(sw swaggerSpec) *APIDocument {
	doc := &APIDocument{
		Title:       sw.Info.Title,
		Version:     sw.Info.Version,
		Description: sw.Info.Description,
		Endpoints:   convertPaths(sw.Paths),
		Servers:     []string{},
	}

	if sw.Host != "" {
		scheme := "https"
		if len(sw.Schemes) > 0 {
			scheme = sw.Schemes[0]
		}
		doc.Servers = append(doc.Servers, scheme+"://"+sw.Host+sw.BasePath)
	}

	if len(sw.Definitions) > 0 || len(sw.Parameters) > 0 || len(sw.Responses) > 0 {
		doc.Components = &Components{
			Schemas:    sw.Definitions,
			Parameters: sw.Parameters,
			Responses:  sw.Responses,
		}
	}
	return doc
}

func fromOpenAPI(oa openAPISpec) *APIDocument {
	doc := &APIDocument{
		Title:       oa.Info.Title,
		Version:     oa.Info.Version,
		Description: oa.Info.Description,
		Endpoints:   convertPaths(oa.Paths),
		Servers:     make([]string, 0, len(oa.Servers)),
		Components:  oa.Components,
	}
	for _, s := range oa.Servers {
		doc.Servers = append(doc.Servers, s.URL)
	}
	return doc
}

// convertPaths flattens paths into endpoints, sorted by path then method order.
func convertPaths(paths map[string]pathItem) []Endpoint {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	endpoints := []Endpoint{}
	for _, path := range keys {
		item := paths[path]
		for _, o := range item.operations() {
			endpoints = append(endpoints, Endpoint{
				Path:        path,
				Method:      o.method,
				Summary:     o.op.Summary,
				Description: o.op.Description,
				Parameters:  mergeParameters(item.Parameters, o.op.Parameters),
				RequestBody: o.op.RequestBody,
				Responses:   o.op.Responses,
			})
		}
	}
	return endpoints
}

// mergeParameters applies path-level parameters unless the operation
// overrides the same (name, in) pair.
func mergeParameters(shared, own []*Parameter) []*Parameter {
	if len(shared) == 0 {
		return own
	}
	seen := make(map[string]bool, len(own))
	for _, p := range own {
		if p != nil {
			seen[p.In+"/"+p.Name] = true
		}
	}
	out := make([]*Parameter, 0, len(shared)+len(own))
	for _, p := range shared {
		if p != nil && !seen[p.In+"/"+p.Name] {
			out = append(out, p)
		}
	}
	return append(out, own...)
}
