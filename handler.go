package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// solveRequest is the Function URL body, read with gjson:
//
//	{"mode": "worst" | "greedy" | "benchmark",
//	 "recipes": {"stick.json": {...}}, "tags": {"planks": {...}},
//	 "vocabulary": [...], "emptyItem": "...", "shapelessAnswers": true,
//	 "secret": "a,b,...", "openers": ["..."]}
type solveRequest struct {
	mode    string
	recipes map[string]string
	tags    map[string]string
	secret  string
	cfg     Config
}

func parseSolveRequest(body string) (solveRequest, error) {
	req := solveRequest{cfg: DefaultConfig(), recipes: map[string]string{}, tags: map[string]string{}}
	if !gjson.Valid(body) {
		return req, fmt.Errorf("invalid JSON")
	}
	root := gjson.Parse(body)

	req.mode = root.Get("mode").String()
	if req.mode == "" {
		req.mode = "worst"
	}
	switch req.mode {
	case "worst", "greedy", "benchmark":
	default:
		return req, fmt.Errorf("unknown mode %q", req.mode)
	}

	recipes := root.Get("recipes")
	if !recipes.IsObject() || len(recipes.Map()) == 0 {
		return req, fmt.Errorf("missing recipes field")
	}
	recipes.ForEach(func(k, v gjson.Result) bool {
		req.recipes[k.String()] = v.Raw
		return true
	})
	root.Get("tags").ForEach(func(k, v gjson.Result) bool {
		req.tags[k.String()] = v.Raw
		return true
	})

	if v := root.Get("vocabulary"); v.IsArray() {
		req.cfg.Vocabulary = nil
		for _, it := range v.Array() {
			req.cfg.Vocabulary = append(req.cfg.Vocabulary, it.String())
		}
	}
	if v := root.Get("emptyItem"); v.Exists() {
		req.cfg.EmptyItem = v.String()
	}
	if v := root.Get("namespace"); v.Exists() {
		req.cfg.Namespace = v.String()
	}
	if v := root.Get("shapelessAnswers"); v.Exists() {
		req.cfg.ShapelessAnswers = v.Bool()
	}
	if v := root.Get("memoize"); v.Exists() {
		req.cfg.Memoize = v.Bool()
	}
	if v := root.Get("offsets"); v.IsArray() {
		req.cfg.Offsets = nil
		for _, o := range v.Array() {
			req.cfg.Offsets = append(req.cfg.Offsets, Offset{
				Width:  int(o.Get("width").Int()),
				Height: int(o.Get("height").Int()),
				X:      int(o.Get("x").Int()),
				Y:      int(o.Get("y").Int()),
			})
		}
	}
	root.Get("openers").ForEach(func(_, v gjson.Result) bool {
		req.cfg.Openers = append(req.cfg.Openers, v.String())
		return true
	})
	req.secret = root.Get("secret").String()
	if req.mode == "greedy" && req.secret == "" {
		return req, fmt.Errorf("greedy mode needs a secret")
	}
	if err := req.cfg.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// handleRequest runs one solve for a Function URL request.
func handleRequest(event events.LambdaFunctionURLRequest, logger zerolog.Logger) events.LambdaFunctionURLResponse {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	req, err := parseSolveRequest(body)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	vocab, err := req.cfg.NewVocabulary()
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	recipes, stats, err := loadFromStrings(recipeFilesFromMap(req.recipes), mapTagSource(req.tags), vocab)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	data := &InputData{Recipes: recipes, Vocab: vocab, Stats: stats}
	pools := data.BuildPools(&req.cfg)

	var rep Report
	switch req.mode {
	case "worst":
		rep, err = runWorstCase(data, pools, &req.cfg, logger)
	case "greedy":
		var secret Craft
		secret, err = ParseCraft(vocab, req.secret)
		if err != nil {
			return errResp(http.StatusBadRequest, err.Error())
		}
		rep, err = runPlay(data, pools, &req.cfg, SecretOracle{Secret: secret}, logger)
	case "benchmark":
		rep, err = runBenchmark(data, pools, &req.cfg, logger)
	}
	if err != nil {
		code := http.StatusUnprocessableEntity
		if errors.Is(err, ErrUnknownItem) {
			code = http.StatusBadRequest
		}
		return errResp(code, err.Error())
	}

	respJSON, _ := json.Marshal(rep)
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}
}

func errResp(code int, msg string) events.LambdaFunctionURLResponse {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}
}
