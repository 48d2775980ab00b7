//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"
	"time"

	"scriptureref/internal/adapter/bounds"
	"scriptureref/internal/adapter/cache"
	"scriptureref/internal/adapter/catalog"
	"scriptureref/internal/adapter/matcher"
	"scriptureref/internal/adapter/memstore"
	"scriptureref/internal/adapter/refparse"
	"scriptureref/internal/canon"
	"scriptureref/internal/usecase"
)

var (
	store     *memstore.MemoryStore
	cat       *catalog.Static
	books     *matcher.Matcher
	loader    *bounds.Loader
	resolver  *usecase.ResolveUseCase
	suggester *cache.CachedSuggester
	versionID string
)

func init() {
	store = memstore.NewMemoryStore()
	cat = catalog.NewStatic()
	books = matcher.New(canon.AbbreviationIndex(), matcher.DefaultMinSimilarity)
	loader = bounds.New(store, bounds.DefaultFallbackVerses, 0, nil)
	resolver = usecase.NewResolveUseCase(refparse.New(books, 800), loader, cat)

	// Backspacing retreads the same prefixes, so memoize per keystroke.
	suggestUC := usecase.NewSuggestUseCase(books, cat, 0, 0)
	suggester = cache.NewCachedSuggester(suggestUC, cache.NewSuggestionCache(512, 5*time.Minute))

	versionID = "kjv"
}

func main() {
	c := make(chan struct{})

	js.Global().Set("parseReference", js.FuncOf(parseReference))
	js.Global().Set("validateReference", js.FuncOf(validateReference))
	js.Global().Set("findBookMatches", js.FuncOf(findBookMatches))
	js.Global().Set("generateSuggestions", js.FuncOf(generateSuggestions))
	js.Global().Set("loadVerses", js.FuncOf(loadVerses))
	js.Global().Set("setVersion", js.FuncOf(setVersion))

	<-c
}

func parseReference(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: parseReference(text)")
	}
	return makeResult(resolver.Parse(args[0].String()))
}

func validateReference(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: validateReference(text, [versionId])")
	}

	version := versionID
	if len(args) > 1 {
		version = args[1].String()
	}

	ref := resolver.Parse(args[0].String())
	result, err := resolver.Validate(context.Background(), ref, version)
	if err != nil {
		return makeError("validation failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"reference":  ref,
		"validation": result,
	})
}

func findBookMatches(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: findBookMatches(input, [limit])")
	}

	limit := 5
	if len(args) > 1 {
		limit = args[1].Int()
	}

	return makeResult(books.FindMatches(args[0].String(), cat.ListBooks(), limit))
}

func generateSuggestions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: generateSuggestions(input, [limit])")
	}

	limit := 8
	if len(args) > 1 {
		limit = args[1].Int()
	}

	return makeResult(suggester.Suggest(args[0].String(), limit))
}

func loadVerses(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: loadVerses(content, [versionId])")
	}

	version := versionID
	if len(args) > 1 {
		version = args[1].String()
	}

	result, err := usecase.IngestContent(context.Background(), store, args[0].String(), version)
	if err != nil {
		return makeError("load failed: " + err.Error())
	}

	// New verse data may change chapter bounds.
	loader.Clear()

	return makeResult(map[string]interface{}{
		"version":       version,
		"versesLoaded":  result.LinesParsed,
		"linesSkipped":  result.LinesSkipped,
		"chaptersSaved": result.ChaptersSaved,
	})
}

func setVersion(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: setVersion(versionId)")
	}

	versionID = args[0].String()
	// Bounds from different versions must never mix.
	loader.Clear()

	return makeResult(map[string]interface{}{
		"version": versionID,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
