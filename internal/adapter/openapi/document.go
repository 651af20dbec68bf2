package openapi

// APIDocument is the simplified API description that gets rendered.
type APIDocument struct {
	Title       string      `yaml:"title"`
	Version     string      `yaml:"version"`
	Description string      `yaml:"description,omitempty"`
	Endpoints   []Endpoint  `yaml:"endpoints"`
	Servers     []string    `yaml:"servers"`
	Components  *Components `yaml:"components"`
}

// Endpoint is one (path, method) pair.
type Endpoint struct {
	Path        string               `yaml:"path"`
	Method      string               `yaml:"method"`
	Summary     string               `yaml:"summary"`
	Description string               `yaml:"description,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters"`
	RequestBody *RequestBody         `yaml:"requestBody"`
	Responses   map[string]*Response `yaml:"responses"`
}

type Parameter struct {
	Name        string  `yaml:"name"`
	In          string  `yaml:"in"`
	Required    bool    `yaml:"required"`
	Type        string  `yaml:"type,omitempty"` // Swagger 2.0 puts the type on the parameter
	Schema      *Schema `yaml:"schema"`
	Description string  `yaml:"description,omitempty"`
	Ref         string  `yaml:"$ref,omitempty"`
}

type RequestBody struct {
	Description string                `yaml:"description"`
	Content     map[string]*MediaType `yaml:"content"`
	Ref         string                `yaml:"$ref,omitempty"`
}

type Response struct {
	Description string                `yaml:"description"`
	Content     map[string]*MediaType `yaml:"content"`
	Schema      *Schema               `yaml:"schema,omitempty"` // Swagger 2.0
	Ref         string                `yaml:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `yaml:"schema"`
}

type Schema struct {
	Type        string  `yaml:"type"`
	Description string  `yaml:"description,omitempty"`
	Items       *Schema `yaml:"items,omitempty"`
	Ref         string  `yaml:"$ref,omitempty"`
}

// Components holds reusable objects referenced by $ref.
type Components struct {
	Schemas       map[string]*Schema      `yaml:"schemas"`
	Parameters    map[string]*Parameter   `yaml:"parameters"`
	RequestBodies map[string]*RequestBody `yaml:"requestBodies"`
	Responses     map[string]*Response    `yaml:"responses"`
}

// specInfo is the info block shared by Swagger 2.0 and OpenAPI 3.
type specInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

// swaggerSpec is a Swagger 2.0 document.
type swaggerSpec struct {
	Swagger     string                `yaml:"swagger"`
	Info        specInfo              `yaml:"info"`
	Host        string                `yaml:"host"`
	BasePath    string                `yaml:"basePath"`
	Schemes     []string              `yaml:"schemes"`
	Paths       map[string]pathItem   `yaml:"paths"`
	Definitions map[string]*Schema    `yaml:"definitions"`
	Parameters  map[string]*Parameter `yaml:"parameters"`
	Responses   map[string]*Response  `yaml:"responses"`
}

// openAPISpec is an OpenAPI 3.x document.
type openAPISpec struct {
	OpenAPI    string              `yaml:"openapi"`
	Info       specInfo            `yaml:"info"`
	Servers    []server            `yaml:"servers"`
	Paths      map[string]pathItem `yaml:"paths"`
	Components *Components         `yaml:"components"`
}

type server struct {
	URL string `yaml:"url"`
}

type pathItem struct {
	Parameters []*Parameter `yaml:"parameters"`
	Get        *operation   `yaml:"get"`
	Post       *operation   `yaml:"post"`
	Put        *operation   `yaml:"put"`
	Delete     *operation   `yaml:"delete"`
	Patch      *operation   `yaml:"patch"`
	Head       *operation   `yaml:"head"`
	Options    *operation   `yaml:"options"`
}

type operation struct {
	Summary     string               `yaml:"summary"`
	Description string               `yaml:"description"`
	OperationID string               `yaml:"operationId"`
	Parameters  []*Parameter         `yaml:"parameters"`
	RequestBody *RequestBody         `yaml:"requestBody"`
	Responses   map[string]*Response `yaml:"responses"`
}

// operations lists the item's operations in rendering order.
func (p pathItem) operations() []struct {
	method string
	op     *operation
} {
	all := []struct {
		method string
		op     *operation
	}{
		{"GET", p.Get},
		{"POST", p.Post},
		{"PUT", p.Put},
		{"DELETE", p.Delete},
		{"PATCH", p.Patch},
		{"HEAD", p.Head},
		{"OPTIONS", p.Options},
	}
	out := all[:0]
	for _, o := range all {
		if o.op != nil {
			out = append(out, o)
		}
	}
	return out
}
