package extract

import "testing"

func TestParseItems_TruncatesTags(t *testing.T) {
	out := `{"items":[{"name":"Burger","price":9.5,"tags":["beef","grill","melt","cheese","bacon","extra"]}]}`

	items := ParseItems(out)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if len(items[0].Tags) != 6 {
		t.Fatalf("expected 6 tags, got %d", len(items[0].Tags))
	}
	if items[0].Price == nil || *items[0].Price != 9.5 {
		t.Fatalf("expected price 9.5, got %v", items[0].Price)
	}

	long := `{"items":[{"name":"Wings","tags":["a","b","c","d","e","f","g","h"]}]}`
	items = ParseItems(long)
	if len(items[0].Tags) != MaxTags {
		t.Fatalf("expected tags truncated to %d, got %d", MaxTags, len(items[0].Tags))
	}
	if items[0].Tags[5] != "f" {
		t.Fatalf("expected first six tags kept in order, got %v", items[0].Tags)
	}
}

func TestParseItems_DropsBlankNames(t *testing.T) {
	out := `{"items":[{"name":"   "},{"name":""},{"price":4},{"name":"  Rosti  "}]}`

	items := ParseItems(out)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].Name != "Rosti" {
		t.Fatalf("expected trimmed name Rosti, got %q", items[0].Name)
	}
}

func TestParseItems_SalvagesWrappedJSON(t *testing.T) {
	out := "here is your menu: {\"items\":[{\"name\":\"Soup\"}]} thanks!"

	items := ParseItems(out)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	soup := items[0]
	if soup.Name != "Soup" {
		t.Fatalf("expected Soup, got %q", soup.Name)
	}
	if soup.Price != nil || soup.Description != nil || soup.Section != nil {
		t.Fatalf("expected null price/description/section, got %+v", soup)
	}
	if soup.Tags == nil || len(soup.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", soup.Tags)
	}
}

func TestParseItems_SkipsBracesInProse(t *testing.T) {
	out := "I read {two} sections.\n```json\n{\"items\":[{\"name\":\"Tea\",\"section\":\"Drinks {hot}\"}]}\n```"

	items := ParseItems(out)
	if len(items) != 1 || items[0].Name != "Tea" {
		t.Fatalf("expected Tea, got %+v", items)
	}
	if items[0].Section == nil || *items[0].Section != "Drinks {hot}" {
		t.Fatalf("expected section with braces preserved, got %v", items[0].Section)
	}
}

func TestParseItems_Unreadable(t *testing.T) {
	cases := []string{
		"",
		"sorry, I cannot read this menu",
		"{not json at all}",
		`{"items": "none"}`,
		`[{"name":"Soup"}]`,
		`{"dishes":[{"name":"Soup"}]}`,
	}

	for _, out := range cases {
		items := ParseItems(out)
		if items == nil || len(items) != 0 {
			t.Errorf("ParseItems(%q) = %+v, want empty list", out, items)
		}
	}
}

func TestParseItems_Coercion(t *testing.T) {
	out := `{"items":[{
		"name": "Tenderloin",
		"price": "12.99",
		"description": "  Breaded and fried  ",
		"section": "",
		"tags": ["pork", 3, true, null]
	}]}`

	items := ParseItems(out)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	it := items[0]
	if it.Price != nil {
		t.Errorf("expected non-numeric price to become null, got %v", *it.Price)
	}
	if it.Description == nil || *it.Description != "Breaded and fried" {
		t.Errorf("expected trimmed description, got %v", it.Description)
	}
	if it.Section != nil {
		t.Errorf("expected empty section to be null, got %q", *it.Section)
	}

	want := []string{"pork", "3", "true", "null"}
	if len(it.Tags) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, it.Tags)
	}
	for i := range want {
		if it.Tags[i] != want[i] {
			t.Errorf("tag %d: expected %q, got %q", i, want[i], it.Tags[i])
		}
	}
}

func TestParseItems_NonArrayTags(t *testing.T) {
	items := ParseItems(`{"items":[{"name":"Pizza","tags":"cheese"}]}`)
	if len(items) != 1 || len(items[0].Tags) != 0 {
		t.Fatalf("expected empty tags for non-array value, got %+v", items)
	}
}
