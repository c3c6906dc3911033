package llm

import "testing"

func TestParseSingleResponse_Valid(t *testing.T) {
	res := parseSingleResponse(`{"is_vegetarian": true, "confidence": 0.9, "reasoning": "no meat"}`)
	if res.IsVegetarian == nil || !*res.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", res)
	}
	if res.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", res.Confidence)
	}
}

func TestParseSingleResponse_Malformed(t *testing.T) {
	res := parseSingleResponse("not json at all")
	if res.IsVegetarian != nil {
		t.Fatalf("expected abstain, got %+v", res)
	}
}

func TestParseBatchResponse_ExactOrder(t *testing.T) {
	names := []string{"Veggie Burger", "Beef Burger"}
	response := `[{"dish":"Veggie Burger","is_vegetarian":true,"confidence":0.9,"reasoning":"plant patty"},` +
		`{"dish":"Beef Burger","is_vegetarian":false,"confidence":0.95,"reasoning":"beef"}]`

	results := parseBatchResponse(response, names)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !*results["Veggie Burger"].IsVegetarian {
		t.Fatalf("expected veggie burger vegetarian=true")
	}
	if *results["Beef Burger"].IsVegetarian {
		t.Fatalf("expected beef burger vegetarian=false")
	}
}

func TestParseBatchResponse_FuzzyNameMatch(t *testing.T) {
	names := []string{"Margherita Pizza"}
	response := `[{"dish":"margherita","is_vegetarian":true,"confidence":0.8,"reasoning":"cheese only"}]`

	results := parseBatchResponse(response, names)
	res, ok := results["Margherita Pizza"]
	if !ok {
		t.Fatalf("expected fuzzy match to original name, got %+v", results)
	}
	if res.IsVegetarian == nil || !*res.IsVegetarian {
		t.Fatalf("expected vegetarian=true, got %+v", res)
	}
}

func TestParseBatchResponse_CodeFenced(t *testing.T) {
	names := []string{"Pho"}
	response := "```json\n[{\"dish\":\"Pho\",\"is_vegetarian\":false,\"confidence\":0.9,\"reasoning\":\"beef broth\"}]\n```"

	results := parseBatchResponse(response, names)
	if *results["Pho"].IsVegetarian {
		t.Fatalf("expected pho vegetarian=false")
	}
}

func TestParseBatchResponse_Unparseable(t *testing.T) {
	names := []string{"A", "B"}
	results := parseBatchResponse("garbage response", names)
	for _, n := range names {
		if results[n].IsVegetarian != nil {
			t.Fatalf("expected abstain for %s, got %+v", n, results[n])
		}
	}
}
