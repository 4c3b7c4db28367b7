package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// tagSource returns the raw JSON of a tag file by its bare name ("planks").
type tagSource func(name string) (string, error)

// recipeFile is one raw recipe document and the name it was loaded from.
type recipeFile struct {
	name string
	json string
}

// loadStats counts what happened to the raw recipes.
type loadStats struct {
	Total    int // recipe files seen
	Crafting int // shaped or shapeless
	Valid    int // every group resolved inside the vocabulary
}

// tagResolver expands tags once per load and detects cycles.
type tagResolver struct {
	src      tagSource
	cache    map[string][]string
	visiting map[string]bool
}

func newTagResolver(src tagSource) *tagResolver {
	return &tagResolver{
		src:      src,
		cache:    make(map[string][]string),
		visiting: make(map[string]bool),
	}
}

// expand returns the item ids of a tag, following nested "#tag" entries.
func (r *tagResolver) expand(tag string) ([]string, error) {
	name, ok := bareTagName(tag)
	if !ok {
		return nil, fmt.Errorf("invalid tag name %q", tag)
	}
	if items, ok := r.cache[name]; ok {
		return items, nil
	}
	if r.visiting[name] {
		return nil, fmt.Errorf("tag %s: reference cycle", name)
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	raw, err := r.src(name)
	if err != nil {
		return nil, fmt.Errorf("tag %s: %w", name, err)
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("tag %s: invalid JSON", name)
	}
	values := gjson.Get(raw, "values")
	if !values.IsArray() {
		return nil, fmt.Errorf("tag %s: could not find JSON array at path 'values'", name)
	}

	var items []string
	var ferr error
	values.ForEach(func(_, v gjson.Result) bool {
		// Optional entries are written {"id": ..., "required": false}.
		id := v.String()
		if v.IsObject() {
			id = v.Get("id").String()
		} else if v.Type != gjson.String {
			ferr = fmt.Errorf("tag %s: non-string value %s in 'values'", name, v.Raw)
			return false
		}
		if strings.HasPrefix(id, "#") {
			nested, err := r.expand(id[1:])
			if err != nil {
				ferr = fmt.Errorf("tag %s: %w", name, err)
				return false
			}
			items = append(items, nested...)
			return true
		}
		items = append(items, id)
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	r.cache[name] = items
	return items, nil
}

// bareTagName strips "#" and the "minecraft:" namespace.
func bareTagName(tag string) (string, bool) {
	tag = strings.TrimPrefix(tag, "#")
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		if tag[:i] != "minecraft" {
			return "", false
		}
		tag = tag[i+1:]
	}
	return tag, tag != ""
}

// isCraftingRecipe reports whether a raw recipe should be parsed at all.
func isCraftingRecipe(raw string) bool {
	_, ok := parseRecipeKind(gjson.Get(raw, "type").String())
	return ok
}

// parseIngredient turns one ingredient value into item ids, tags fully expanded.
func parseIngredient(v gjson.Result, tags *tagResolver) ([]string, error) {
	switch {
	case v.IsArray():
		var out []string
		var ferr error
		v.ForEach(func(_, elem gjson.Result) bool {
			items, err := parseIngredient(elem, tags)
			if err != nil {
				ferr = fmt.Errorf("while parsing list of ingredients: %w", err)
				return false
			}
			out = append(out, items...)
			return true
		})
		return out, ferr
	case v.IsObject():
		m := v.Map()
		if len(m) != 1 {
			return nil, fmt.Errorf("invalid ingredient object %s: want exactly one field", v.Raw)
		}
		for key, val := range m {
			if val.Type != gjson.String {
				return nil, fmt.Errorf("invalid ingredient %s: %q must be a string", v.Raw, key)
			}
			switch key {
			case "item":
				return []string{val.String()}, nil
			case "tag":
				return tags.expand(val.String())
			default:
				return nil, fmt.Errorf("invalid ingredient type %q", key)
			}
		}
	case v.Type == gjson.String:
		s := v.String()
		if strings.HasPrefix(s, "#") {
			return tags.expand(s)
		}
		return []string{s}, nil
	}
	return nil, fmt.Errorf("invalid ingredient %s", v.Raw)
}

// rawRecipe is a parsed recipe still holding item ids, before vocabulary filtering.
type rawRecipe struct {
	result      string
	kind        RecipeKind
	grid        [][][]string
	ingredients [][]string
}

// parseRecipe parses one crafting recipe document.
func parseRecipe(raw string, tags *tagResolver, empty string) (rawRecipe, error) {
	var rr rawRecipe
	kindName := gjson.Get(raw, "type")
	if kindName.Type != gjson.String {
		return rr, fmt.Errorf("expected string category at path 'type'")
	}
	kind, ok := parseRecipeKind(kindName.String())
	if !ok {
		return rr, fmt.Errorf("invalid category %s", kindName.String())
	}
	rr.kind = kind

	switch kind {
	case KindShaped:
		key := gjson.Get(raw, "key")
		if !key.IsObject() {
			return rr, fmt.Errorf("while parsing shaped recipe: expected object at path 'key'")
		}
		symbols := make(map[string][]string)
		var ferr error
		key.ForEach(func(k, v gjson.Result) bool {
			items, err := parseIngredient(v, tags)
			if err != nil {
				ferr = fmt.Errorf("while parsing shaped recipe: key %q: %w", k.String(), err)
				return false
			}
			symbols[k.String()] = items
			return true
		})
		if ferr != nil {
			return rr, ferr
		}
		pattern := gjson.Get(raw, "pattern")
		if !pattern.IsArray() {
			return rr, fmt.Errorf("while parsing shaped recipe: expected array at path 'pattern'")
		}
		for _, line := range pattern.Array() {
			if line.Type != gjson.String {
				return rr, fmt.Errorf("while parsing pattern line: expected string, found %s", line.Raw)
			}
			var row [][]string
			for _, c := range line.String() {
				if c == ' ' {
					row = append(row, []string{empty})
					continue
				}
				items, ok := symbols[string(c)]
				if !ok {
					return rr, fmt.Errorf("while parsing pattern line: unknown item type %q", c)
				}
				row = append(row, items)
			}
			rr.grid = append(rr.grid, row)
		}
		if len(rr.grid) == 0 || len(rr.grid) > 3 {
			return rr, fmt.Errorf("while parsing shaped recipe: pattern has %d rows", len(rr.grid))
		}
		for _, row := range rr.grid {
			if len(row) == 0 || len(row) > 3 {
				return rr, fmt.Errorf("while parsing shaped recipe: pattern row has %d columns", len(row))
			}
		}
	case KindShapeless:
		ingredients := gjson.Get(raw, "ingredients")
		if !ingredients.IsArray() {
			return rr, fmt.Errorf("while parsing shapeless recipe: expected array at path 'ingredients'")
		}
		for i, v := range ingredients.Array() {
			items, err := parseIngredient(v, tags)
			if err != nil {
				return rr, fmt.Errorf("while parsing shapeless recipe: ingredient %d: %w", i, err)
			}
			rr.ingredients = append(rr.ingredients, items)
		}
		if len(rr.ingredients) == 0 || len(rr.ingredients) > 9 {
			return rr, fmt.Errorf("while parsing shapeless recipe: %d ingredients", len(rr.ingredients))
		}
	}

	result := gjson.Get(raw, "result.id")
	if !result.Exists() {
		result = gjson.Get(raw, "result.item")
	}
	if !result.Exists() {
		result = gjson.Get(raw, "result")
	}
	if result.Type != gjson.String || result.String() == "" {
		return rr, fmt.Errorf("did not find valid result key")
	}
	rr.result = result.String()
	return rr, nil
}

// filterGroup keeps vocabulary members, first occurrence wins.
func filterGroup(ids []string, vocab *Vocabulary) IngredientGroup {
	var group IngredientGroup
	seen := make(map[Item]bool, len(ids))
	for _, id := range ids {
		it, ok := vocab.index[id]
		if !ok || seen[it] {
			continue
		}
		seen[it] = true
		group = append(group, it)
	}
	return group
}

// filterIngredients maps a raw recipe onto the vocabulary. ok is false when
// some group has no accepted member.
func filterIngredients(rr rawRecipe, vocab *Vocabulary) (Recipe, bool) {
	r := Recipe{Result: rr.result, Kind: rr.kind}
	switch rr.kind {
	case KindShaped:
		for _, rawRow := range rr.grid {
			row := make([]IngredientGroup, 0, len(rawRow))
			for _, ids := range rawRow {
				g := filterGroup(ids, vocab)
				if len(g) == 0 {
					return Recipe{}, false
				}
				row = append(row, g)
			}
			r.Grid = append(r.Grid, row)
		}
	case KindShapeless:
		for _, ids := range rr.ingredients {
			g := filterGroup(ids, vocab)
			if len(g) == 0 {
				return Recipe{}, false
			}
			r.Ingredients = append(r.Ingredients, g)
		}
	}
	return r, true
}

// loadFromStrings parses recipe documents against a tag source and vocabulary.
// Files must already be in a stable order.
func loadFromStrings(files []recipeFile, tags tagSource, vocab *Vocabulary) ([]Recipe, loadStats, error) {
	var stats loadStats
	resolver := newTagResolver(tags)
	empty := vocab.Name(Empty)
	var recipes []Recipe
	for _, f := range files {
		stats.Total++
		if !gjson.Valid(f.json) {
			return nil, stats, fmt.Errorf("while parsing path %s: invalid JSON", f.name)
		}
		if !isCraftingRecipe(f.json) {
			continue
		}
		stats.Crafting++
		rr, err := parseRecipe(f.json, resolver, empty)
		if err != nil {
			return nil, stats, fmt.Errorf("while parsing path %s: %w", f.name, err)
		}
		r, ok := filterIngredients(rr, vocab)
		if !ok {
			log.Debug().Str("recipe", f.name).Msg("dropped: ingredient outside vocabulary")
			continue
		}
		r.Source = f.name
		recipes = append(recipes, r)
	}
	stats.Valid = len(recipes)
	return recipes, stats, nil
}

// dirTagSource reads "<dir>/<name>.json".
func dirTagSource(dir string) tagSource {
	return func(name string) (string, error) {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		if err != nil {
			return "", fmt.Errorf("read: %w", err)
		}
		return string(data), nil
	}
}

// mapTagSource serves tags from memory, keyed by bare or namespaced name.
func mapTagSource(tags map[string]string) tagSource {
	return func(name string) (string, error) {
		if raw, ok := tags[name]; ok {
			return raw, nil
		}
		if raw, ok := tags["minecraft:"+name]; ok {
			return raw, nil
		}
		return "", fmt.Errorf("tag file not found")
	}
}

// readRecipeDir lists and reads every .json file in dir, sorted by name.
func readRecipeDir(dir string) ([]recipeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("while listing files in recipe directory %s: %w", dir, err)
	}
	var files []recipeFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, recipeFile{name: e.Name(), json: string(data)})
	}
	return files, nil
}

// LoadRawData reads the configured recipe and tag directories.
func LoadRawData(cfg Config) (*InputData, error) {
	vocab, err := cfg.NewVocabulary()
	if err != nil {
		return nil, err
	}
	files, err := readRecipeDir(cfg.RecipeDir)
	if err != nil {
		return nil, err
	}
	recipes, stats, err := loadFromStrings(files, dirTagSource(cfg.TagDir), vocab)
	if err != nil {
		return nil, fmt.Errorf("while parsing recipes from JSON: %w", err)
	}
	return &InputData{Recipes: recipes, Vocab: vocab, Stats: stats}, nil
}

// recipeFilesFromMap orders in-memory recipe documents by name.
func recipeFilesFromMap(docs map[string]string) []recipeFile {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]recipeFile, len(names))
	for i, name := range names {
		files[i] = recipeFile{name: name, json: docs[name]}
	}
	return files
}
