//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"
	"time"

	"ngram/internal/adapter/analyzer"
	"ngram/internal/adapter/cache"
	"ngram/internal/adapter/fs"
	"ngram/internal/adapter/lm"
	"ngram/internal/adapter/memstore"
	"ngram/internal/domain"
	"ngram/internal/usecase"
)

// store fronts an in-memory model store with a read cache.
var store *cache.ModelCache

func init() {
	store = newStore()
}

func newStore() *cache.ModelCache {
	return cache.NewModelCache(memstore.NewMemoryStore(), 4, time.Hour)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("ngramSegment", js.FuncOf(segmentText))
	js.Global().Set("ngramTokenise", js.FuncOf(tokeniseSentence))
	js.Global().Set("ngramTrain", js.FuncOf(trainModel))
	js.Global().Set("ngramScore", js.FuncOf(scoreSentence))
	js.Global().Set("ngramModels", js.FuncOf(listModels))
	js.Global().Set("ngramClear", js.FuncOf(clearModels))

	<-c
}

// segmentText(paragraph)
func segmentText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: ngramSegment(paragraph)")
	}
	sentences, err := analyzer.Segment(args[0].String())
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"sentences": sentences,
	})
}

// tokeniseSentence(sentence, [lang])
func tokeniseSentence(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: ngramTokenise(sentence, [lang])")
	}
	lang, err := langArg(args, 1)
	if err != nil {
		return makeError(err.Error())
	}
	normalised, err := analyzer.Normalise(args[0].String(), lang)
	if err != nil {
		return makeError(err.Error())
	}
	tokens, err := analyzer.Tokenise(normalised, lang)
	if err != nil {
		return makeError(err.Error())
	}
	return makeResult(map[string]interface{}{
		"normalised": normalised,
		"tokens":     tokens,
	})
}

// trainModel(name, text, [order], [lang]) trains on text holding one
// paragraph per line. Text is lowercased as ngramScore expects.
func trainModel(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: ngramTrain(name, text, [order], [lang])")
	}
	name := args[0].String()

	order := domain.Bigram
	if len(args) > 2 {
		var err error
		if order, err = domain.ParseOrder(args[2].String()); err != nil {
			return makeError(err.Error())
		}
	}
	lang, err := langArg(args, 3)
	if err != nil {
		return makeError(err.Error())
	}

	pre, err := usecase.NewPreprocessorFor(lang)
	if err != nil {
		return makeError(err.Error())
	}
	paragraphs, err := fs.ParseParagraphs(strings.NewReader(args[1].String()), true)
	if err != nil {
		return makeError(err.Error())
	}
	seqs, err := pre.Preprocess(paragraphs)
	if err != nil {
		return makeError(err.Error())
	}

	est, err := lm.EstimatorFor(order)
	if err != nil {
		return makeError(err.Error())
	}
	counts := lm.Count(est, seqs)
	table := lm.LogProbabilities(counts)

	err = store.PutModel(domain.Model{
		ModelInfo: domain.ModelInfo{
			Name:      name,
			Order:     order,
			Language:  lang,
			Source:    "browser",
			Sentences: len(seqs),
			Total:     counts.Total(),
			CreatedAt: time.Now().UTC(),
			Lowercase: true,
		},
		Table: table,
	})
	if err != nil {
		return makeError("training failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"success":   true,
		"name":      name,
		"sentences": len(seqs),
		"entries":   len(table),
	})
}

// scoreSentence(name, sentence)
func scoreSentence(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return makeError("usage: ngramScore(name, sentence)")
	}
	scored, err := usecase.NewScoreUseCase(store).Score(args[0].String(), []string{args[1].String()})
	if err != nil {
		return makeError("scoring failed: " + err.Error())
	}
	return makeResult(map[string]interface{}{
		"score":  scored[0].Score,
		"tokens": scored[0].Tokens,
	})
}

func listModels(this js.Value, args []js.Value) interface{} {
	infos, _ := store.ListModels()
	return makeResult(map[string]interface{}{
		"models": infos,
	})
}

func clearModels(this js.Value, args []js.Value) interface{} {
	store = newStore()
	return makeResult(map[string]interface{}{
		"success": true,
	})
}

func langArg(args []js.Value, i int) (domain.Language, error) {
	if len(args) <= i {
		return domain.English, nil
	}
	return domain.ParseLanguage(args[i].String())
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
