package domain

import (
	"encoding/json"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"C1", "c2", " C3 ", "C4"} {
		c, err := ParseCategory(in)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", in, err)
		}
		if c == CategoryUnknown {
			t.Fatalf("ParseCategory(%q) returned unknown", in)
		}
	}
	if _, err := ParseCategory("C5"); err == nil {
		t.Fatalf("expected error for C5")
	}
}

func TestCategoryCostMetric(t *testing.T) {
	if CategoryC1.CostMetric() != CostPerFollower {
		t.Fatalf("C1 must rank by cost per follower")
	}
	for _, c := range []Category{CategoryC2, CategoryC3, CategoryC4} {
		if c.CostMetric() != CostPerEngagement {
			t.Fatalf("%s must rank by cost per engagement", c)
		}
	}
	if CategoryC1.IsCampaignCategory() {
		t.Fatalf("C1 is not a campaign category")
	}
}

func TestContentCostFollowsCategory(t *testing.T) {
	follower, engagement := 1.5, 0.2
	c := Content{Category: CategoryC1, CostPerFollower: &follower, CostPerEngagement: &engagement}
	if got := c.Cost(); got == nil || *got != follower {
		t.Fatalf("C1 cost = %v, want %v", got, follower)
	}
	c.Category = CategoryC4
	if got := c.Cost(); got == nil || *got != engagement {
		t.Fatalf("C4 cost = %v, want %v", got, engagement)
	}
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(map[Category]int{CategoryC2: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"C2":3}` {
		t.Fatalf("unexpected json %s", b)
	}

	var v struct {
		Category Category `json:"category"`
	}
	if err = json.Unmarshal([]byte(`{"category":"c3"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Category != CategoryC3 {
		t.Fatalf("got %v, want C3", v.Category)
	}
	if err = json.Unmarshal([]byte(`{"category":"X"}`), &v); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
