//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"robotreadme/internal/adapter/cache"
	"robotreadme/internal/adapter/memstore"
	"robotreadme/internal/adapter/tokenizer"
	"robotreadme/internal/domain"
	"robotreadme/internal/port"
	"robotreadme/internal/usecase"
)

var (
	store    *memstore.MemoryStore
	memCache *cache.CountCache
	registry *tokenizer.Registry
	resolver port.TokenizerResolver
)

func init() {
	// the browser has no network-fetched vocabularies
	registry = tokenizer.NewRegistry(tokenizer.BackendOffline)
	store = memstore.NewMemoryStore()
	memCache = cache.NewCountCache(256, 10*time.Minute)
	resolver = cache.NewCachingResolver(registry, memCache, store, nil)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("robotreadmeCount", js.FuncOf(countText))
	js.Global().Set("robotreadmeCompare", js.FuncOf(compareText))
	js.Global().Set("robotreadmeTokenizers", js.FuncOf(listTokenizers))
	js.Global().Set("robotreadmeStats", js.FuncOf(getStats))
	js.Global().Set("robotreadmeClear", js.FuncOf(clearCounts))

	<-c
}

func countText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: robotreadmeCount(text, [model])")
	}

	tok, err := resolver.Resolve(modelArg(args, 1))
	if err != nil {
		return makeError(err.Error())
	}
	n, err := tok.CountTokens(args[0].String())
	if err != nil {
		return makeError("count failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"tokens":    n,
		"tokenizer": tok.Name(),
	})
}

func compareText(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: robotreadmeCompare(text1, text2, [model])")
	}

	tok, err := resolver.Resolve(modelArg(args, 2))
	if err != nil {
		return makeError(err.Error())
	}
	n1, err := tok.CountTokens(args[0].String())
	if err != nil {
		return makeError("count failed: " + err.Error())
	}
	n2, err := tok.CountTokens(args[1].String())
	if err != nil {
		return makeError("count failed: " + err.Error())
	}

	delta, state := usecase.Classify(domain.TokenCount(n1), domain.TokenCount(n2))
	result := &domain.ComparisonResult{
		Path1:   "text1",
		Path2:   "text2",
		Model:   tok.Name(),
		Tokens1: domain.TokenCount(n1),
		Tokens2: domain.TokenCount(n2),
		Delta:   delta,
		State:   state,
	}

	return makeResult(map[string]interface{}{
		"tokens1": n1,
		"tokens2": n2,
		"delta":   delta,
		"state":   state.String(),
		"verdict": usecase.Verdict(result),
	})
}

func listTokenizers(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"tokenizers": registry.Names(),
		"default":    tokenizer.DefaultModel,
	})
}

func getStats(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"cachedCounts": store.Len(),
	})
}

func clearCounts(this js.Value, args []js.Value) interface{} {
	cleared := store.Len()
	memCache.Invalidate()
	store.Clear()
	return makeResult(map[string]interface{}{
		"success": true,
		"cleared": cleared,
	})
}

func modelArg(args []js.Value, i int) string {
	if len(args) > i && args[i].Type() == js.TypeString {
		return args[i].String()
	}
	return tokenizer.DefaultModel
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
