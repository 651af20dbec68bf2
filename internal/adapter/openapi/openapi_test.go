package openapi

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const swaggerYAML = `
swagger: "2.0"
info:
  title: Congress
  version: "3"
  description: Legislative data
host: api.congress.gov
basePath: /v3
paths:
  /bill/{congress}:
    get:
      summary: Bills by congress
      description: |
        Returns a list of bills
        filtered by congress.
      parameters:
        - name: congress
          in: path
          required: true
          type: integer
          description: The congress number.
        - $ref: "#/parameters/limit"
      responses:
        "200":
          description: OK
        "400":
          description: Bad request
  /bill:
    get:
      summary: All bills
      responses:
        "200":
          description: OK
    post:
      summary: Not real
parameters:
  limit:
    name: limit
    in: query
    type: integer
`

func TestParse_Swagger(t *testing.T) {
	doc, err := Parse([]byte(swaggerYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Title != "Congress" || doc.Version != "3" {
		t.Errorf("unexpected info: %s %s", doc.Title, doc.Version)
	}
	if len(doc.Endpoints) != 3 {
		t.Fatalf("expected one endpoint per (path, method), got %d", len(doc.Endpoints))
	}

	// sorted by path, then GET before POST
	got := []string{}
	for _, ep := range doc.Endpoints {
		got = append(got, ep.Method+" "+ep.Path)
	}
	want := []string{"GET /bill", "POST /bill", "GET /bill/{congress}"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("endpoint %d = %q, want %q", i, got[i], want[i])
		}
	}

	if len(doc.Servers) != 1 || doc.Servers[0] != "https://api.congress.gov/v3" {
		t.Errorf("unexpected servers: %v", doc.Servers)
	}
	if doc.Components == nil || doc.Components.Parameters["limit"] == nil {
		t.Fatal("expected swagger parameters to become components")
	}
}

func TestParse_SwaggerJSON(t *testing.T) {
	data := `{"swagger": "2.0", "info": {"title": "J", "version": "1"}, "paths": {"/x": {"delete": {"summary": "rm", "responses": {"204": {"description": "gone"}}}}}}`

	doc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Endpoints) != 1 || doc.Endpoints[0].Method != "DELETE" {
		t.Fatalf("unexpected endpoints: %+v", doc.Endpoints)
	}
	if doc.Endpoints[0].Responses["204"].Description != "gone" {
		t.Errorf("expected 204 response, got %+v", doc.Endpoints[0].Responses)
	}
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Endpoints) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestParse_Simplified(t *testing.T) {
	data := `
title: Pets
version: "1.0"
endpoints:
  - path: /pets
    method: get
    summary: List pets
    parameters:
      - $ref: "#/components/parameters/Limit"
    responses:
      "200":
        $ref: "#/components/responses/PetList"
components:
  parameters:
    Limit:
      name: limit
      in: query
      schema:
        $ref: "#/components/schemas/Int"
  schemas:
    Int:
      type: integer
  responses:
    PetList:
      description: A list of pets
`
	doc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := ResolveReferences(doc); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	ep := doc.Endpoints[0]
	if ep.Parameters[0].Name != "limit" {
		t.Errorf("expected resolved parameter, got %+v", ep.Parameters[0])
	}
	if ep.Parameters[0].Schema.Type != "integer" {
		t.Errorf("expected resolved schema type, got %+v", ep.Parameters[0].Schema)
	}
	if ep.Responses["200"].Description != "A list of pets" {
		t.Errorf("expected resolved response, got %+v", ep.Responses["200"])
	}
}

func TestParse_OpenAPI3(t *testing.T) {
	data := `
openapi: 3.0.0
info:
  title: Store
  version: "2"
servers:
  - url: https://store.example.com
paths:
  /orders:
    parameters:
      - name: tenant
        in: header
        schema:
          type: string
    post:
      summary: Create order
      requestBody:
        $ref: "#/components/requestBodies/Order"
      responses:
        "201":
          description: Created
components:
  requestBodies:
    Order:
      description: The order to create
      content:
        application/json:
          schema:
            $ref: "#/components/schemas/Order"
  schemas:
    Order:
      type: object
`
	doc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := ResolveReferences(doc); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	ep := doc.Endpoints[0]
	if ep.RequestBody.Description != "The order to create" {
		t.Errorf("expected resolved request body, got %+v", ep.RequestBody)
	}
	if ep.RequestBody.Content["application/json"].Schema.Type != "object" {
		t.Error("expected request body schema to be resolved")
	}
	if len(ep.Parameters) != 1 || ep.Parameters[0].Name != "tenant" {
		t.Errorf("expected path-level parameter to be inherited, got %+v", ep.Parameters)
	}
	if len(doc.Servers) != 1 || doc.Servers[0] != "https://store.example.com" {
		t.Errorf("unexpected servers %v", doc.Servers)
	}
}

func TestResolveReferences_Unresolved(t *testing.T) {
	doc := &APIDocument{
		Endpoints: []Endpoint{{
			Path:       "/x",
			Method:     "GET",
			Parameters: []*Parameter{{Ref: "#/components/parameters/Missing"}},
		}},
		Components: &Components{},
	}

	err := ResolveReferences(doc)
	if !errors.Is(err, ErrUnresolvedRef) {
		t.Fatalf("expected ErrUnresolvedRef, got %v", err)
	}
	if !strings.Contains(err.Error(), "#/components/parameters/Missing") {
		t.Errorf("expected error to name the ref, got %v", err)
	}
}

func TestResolveReferences_NoComponents(t *testing.T) {
	doc := &APIDocument{Endpoints: []Endpoint{{Parameters: []*Parameter{{Ref: "#/x"}}}}}
	if err := ResolveReferences(doc); err != nil {
		t.Errorf("expected no-op without components, got %v", err)
	}
}

func TestRenderText(t *testing.T) {
	doc, err := Parse([]byte(swaggerYAML))
	if err != nil {
		t.Fatal(err)
	}
	if err := ResolveReferences(doc); err != nil {
		t.Fatal(err)
	}

	out := RenderText(doc, RenderOptions{MaxDescription: 2000})

	for _, want := range []string{
		"API: Congress (v3)\n\nDESCRIPTION:\nLegislative data\n\n",
		"ENDPOINT: GET /bill/{congress}\nSUMMARY: Bills by congress\n",
		"DESCRIPTION: Returns a list of bills filtered by congress.\n",
		"  - congress (integer, path, required=true) : The congress number.\n",
		"  - limit (integer, query, required=false)\n",
		"REQUEST BODY: None\n",
		"RESPONSES:\n  - 200: OK\n  - 400: Bad request\nEND\n",
		"ENDPOINT: POST /bill\nSUMMARY: Not real\nDESCRIPTION: (None)\nPARAMETERS:\n  (None)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered text missing %q\n---\n%s", want, out)
		}
	}
}

func TestRenderText_DefaultsAndTruncation(t *testing.T) {
	doc := &APIDocument{
		Title: "T", Version: "0",
		Endpoints: []Endpoint{{
			Path: "/long", Method: "get",
			Description: strings.Repeat("word ", 10),
		}},
	}

	out := RenderText(doc, RenderOptions{MaxDescription: 9})
	if !strings.Contains(out, "(None or your description here)") {
		t.Error("expected placeholder description")
	}
	if !strings.Contains(out, "ENDPOINT: GET /long") {
		t.Error("expected method to be upper-cased")
	}
	if !strings.Contains(out, "DESCRIPTION: word word...\n") {
		t.Errorf("expected truncated description, got:\n%s", out)
	}
	if !strings.Contains(out, "RESPONSES:\n  (None)\n") {
		t.Error("expected empty responses placeholder")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.yaml")
	if err := os.WriteFile(path, []byte(swaggerYAML), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Title != "Congress" {
		t.Errorf("unexpected title %s", doc.Title)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
