package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotreadme/internal/adapter/openapi"
	"robotreadme/internal/adapter/tokenizer"
)

func TestRender_WritesOutput(t *testing.T) {
	spec := writeTemp(t, "swagger.json", `{"swagger": "2.0", "info": {"title": "Pets", "version": "1"}, "paths": {"/pets": {"get": {"summary": "List", "responses": {"200": {"description": "OK"}}}}}}`)
	out := filepath.Join(t.TempDir(), "llm.txt")

	uc := NewRenderUseCase(openapi.RenderOptions{MaxDescription: 100}, tokenizer.NewWhitespaceTokenizer(), nil)
	res, err := uc.Render(spec, out)
	require.NoError(t, err)

	assert.Equal(t, "Pets", res.Title)
	assert.Equal(t, 1, res.Endpoints)
	assert.Equal(t, len(strings.Fields(res.Text)), res.Tokens)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, res.Text, string(data))
	assert.True(t, strings.HasPrefix(res.Text, "API: Pets (v1)"))
}

func TestRender_UnresolvedRef(t *testing.T) {
	spec := writeTemp(t, "api.yaml", `
title: Broken
endpoints:
  - path: /x
    method: get
    responses:
      "200":
        $ref: "#/components/responses/Nope"
components:
  schemas: {}
`)

	_, err := NewRenderUseCase(openapi.RenderOptions{}, nil, nil).Render(spec, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, openapi.ErrUnresolvedRef)
}
