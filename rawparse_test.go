package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testTags = map[string]string{
	"planks":     `{"values":["minecraft:oak_planks","minecraft:birch_planks"]}`,
	"oak_logs":   `{"values":["minecraft:oak_log","minecraft:oak_wood"]}`,
	"logs":       `{"values":["#minecraft:oak_logs",{"id":"minecraft:stripped_oak_log","required":false}]}`,
	"loop_a":     `{"values":["#loop_b"]}`,
	"loop_b":     `{"values":["#minecraft:loop_a"]}`,
	"no_values":  `{"replace":false}`,
	"bad_values": `{"values":[1,2]}`,
}

func loadOne(t *testing.T, doc string) ([]Recipe, loadStats, error) {
	t.Helper()
	files := []recipeFile{{name: "r.json", json: doc}}
	return loadFromStrings(files, mapTagSource(testTags), testVocab(t))
}

func TestTagExpansion(t *testing.T) {
	r := newTagResolver(mapTagSource(testTags))
	got, err := r.expand("#minecraft:logs")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{"minecraft:oak_log", "minecraft:oak_wood", "minecraft:stripped_oak_log"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expand logs (-want +got):\n%s", diff)
	}

	for _, tag := range []string{"loop_a", "no_values", "bad_values", "missing", "other:planks"} {
		if _, err := r.expand(tag); err == nil {
			t.Errorf("expand(%q): want error", tag)
		}
	}
}

func TestParseIngredientForms(t *testing.T) {
	v := testVocab(t)
	planks := mustItem(t, v, "oak_planks")
	stick := mustItem(t, v, "stick")
	coal := mustItem(t, v, "coal")

	tests := []struct {
		name string
		key  string
		want IngredientGroup
	}{
		{"item object", `{"item":"minecraft:stick"}`, group(stick)},
		{"plain string", `"minecraft:stick"`, group(stick)},
		{"tag object", `{"tag":"minecraft:planks"}`, group(planks)},
		{"tag string", `"#minecraft:planks"`, group(planks)},
		{"array", `[{"item":"minecraft:coal"},{"item":"minecraft:charcoal"},"minecraft:stick"]`, group(coal, stick)},
		{"duplicates", `[{"item":"minecraft:coal"},"minecraft:coal"]`, group(coal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"type":"minecraft:crafting_shaped","pattern":["#"],"key":{"#":` + tt.key + `},"result":{"id":"minecraft:x"}}`
			recipes, _, err := loadOne(t, doc)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if len(recipes) != 1 {
				t.Fatalf("got %d recipes, want 1", len(recipes))
			}
			if diff := cmp.Diff(tt.want, recipes[0].Grid[0][0]); diff != "" {
				t.Errorf("group (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseShapedPattern(t *testing.T) {
	v := testVocab(t)
	stick := mustItem(t, v, "stick")
	str := mustItem(t, v, "string")
	doc := `{
		"type": "minecraft:crafting_shaped",
		"key": {"#": {"item": "minecraft:stick"}, "X": {"item": "minecraft:string"}},
		"pattern": [" #X", "# X", " #X"],
		"result": {"count": 1, "item": "minecraft:bow"}
	}`
	recipes, stats, err := loadOne(t, doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats != (loadStats{Total: 1, Crafting: 1, Valid: 1}) {
		t.Errorf("stats = %+v", stats)
	}
	r := recipes[0]
	if r.Result != "minecraft:bow" || r.Source != "r.json" || r.Kind != KindShaped {
		t.Errorf("recipe = %q from %q, kind %v", r.Result, r.Source, r.Kind)
	}
	e := group(Empty)
	want := [][]IngredientGroup{
		{e, group(stick), group(str)},
		{group(stick), e, group(str)},
		{e, group(stick), group(str)},
	}
	if diff := cmp.Diff(want, r.Grid); diff != "" {
		t.Errorf("grid (-want +got):\n%s", diff)
	}
}

func TestParseShapeless(t *testing.T) {
	v := testVocab(t)
	planks := mustItem(t, v, "oak_planks")
	log := mustItem(t, v, "oak_log")
	doc := `{"type":"minecraft:crafting_shapeless","ingredients":[{"tag":"minecraft:oak_logs"},"#planks"],"result":"minecraft:thing"}`
	recipes, _, err := loadOne(t, doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]IngredientGroup{group(log), group(planks)}, recipes[0].Ingredients); diff != "" {
		t.Errorf("ingredients (-want +got):\n%s", diff)
	}
	if recipes[0].Result != "minecraft:thing" {
		t.Errorf("result = %q", recipes[0].Result)
	}
}

func TestLoadFiltering(t *testing.T) {
	files := []recipeFile{
		{"a.json", `{"type":"minecraft:smelting","ingredient":{"item":"minecraft:iron_ore"},"result":{"id":"minecraft:iron_ingot"}}`},
		{"b.json", `{"type":"minecraft:crafting_shapeless","ingredients":["minecraft:paper","minecraft:leather"],"result":{"id":"minecraft:book"}}`},
		{"c.json", `{"type":"minecraft:crafting_shapeless","ingredients":["minecraft:stick","minecraft:coal"],"result":{"id":"minecraft:torch"}}`},
	}
	recipes, stats, err := loadFromStrings(files, mapTagSource(testTags), testVocab(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats != (loadStats{Total: 3, Crafting: 2, Valid: 1}) {
		t.Errorf("stats = %+v, want 3 total, 2 crafting, 1 valid", stats)
	}
	if len(recipes) != 1 || recipes[0].Source != "c.json" {
		t.Errorf("kept %+v, want only c.json", recipes)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"invalid json", `{"type":`, "invalid JSON"},
		{"unknown symbol", `{"type":"minecraft:crafting_shaped","key":{"#":"minecraft:stick"},"pattern":["#Q"],"result":"minecraft:x"}`, "unknown item type"},
		{"no pattern", `{"type":"minecraft:crafting_shaped","key":{},"result":"minecraft:x"}`, "pattern"},
		{"too many rows", `{"type":"minecraft:crafting_shaped","key":{"#":"minecraft:stick"},"pattern":["#","#","#","#"],"result":"minecraft:x"}`, "4 rows"},
		{"wide row", `{"type":"minecraft:crafting_shaped","key":{"#":"minecraft:stick"},"pattern":["####"],"result":"minecraft:x"}`, "4 columns"},
		{"no ingredients", `{"type":"minecraft:crafting_shapeless","ingredients":[],"result":"minecraft:x"}`, "0 ingredients"},
		{"bad ingredient key", `{"type":"minecraft:crafting_shapeless","ingredients":[{"fluid":"minecraft:water"}],"result":"minecraft:x"}`, "invalid ingredient type"},
		{"tag cycle", `{"type":"minecraft:crafting_shapeless","ingredients":["#loop_a"],"result":"minecraft:x"}`, "cycle"},
		{"missing tag", `{"type":"minecraft:crafting_shapeless","ingredients":["#nope"],"result":"minecraft:x"}`, "not found"},
		{"no result", `{"type":"minecraft:crafting_shapeless","ingredients":["minecraft:stick"]}`, "result"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadOne(t, tt.doc)
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), tt.msg) || !strings.Contains(err.Error(), "r.json") {
				t.Errorf("err = %v, want mention of %q and the file", err, tt.msg)
			}
		})
	}
}

func TestRecipeFilesFromMapSorted(t *testing.T) {
	files := recipeFilesFromMap(map[string]string{"b.json": "{}", "a.json": "{}", "c.json": "{}"})
	var names []string
	for _, f := range files {
		names = append(names, f.name)
	}
	if diff := cmp.Diff([]string{"a.json", "b.json", "c.json"}, names); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}
