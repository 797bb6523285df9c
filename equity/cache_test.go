package equity

import (
	"testing"

	"voyager.com/holdem/poker"
)

func TestCacheKey(t *testing.T) {
	testCases := []struct {
		hole     string
		expected string
	}{
		{"AsAd", "AA:8:10000"},
		{"AhKh", "AKs:8:10000"},
		{"KhAh", "AKs:8:10000"},
		{"AcKd", "AKo:8:10000"},
		{"KdAc", "AKo:8:10000"},
		{"2c7d", "72o:8:10000"},
		{"Ts9s", "T9s:8:10000"},
	}

	for i, tc := range testCases {
		hole, err := poker.ParseCards(tc.hole)
		if err != nil {
			t.Fatalf("Test case %d cannot parse %s: %s", i, tc.hole, err)
		}
		key := cacheKey(hole, 8, 10000)
		if key != tc.expected {
			t.Errorf("Test case %d cacheKey(%s): expected %s, actual %s", i, tc.hole, tc.expected, key)
		}
	}
}

func TestCacheKeyVariesWithShape(t *testing.T) {
	hole, err := poker.ParseCards("AsAd")
	if err != nil {
		t.Fatal(err)
	}
	k1 := cacheKey(hole, 1, 10000)
	k2 := cacheKey(hole, 8, 10000)
	k3 := cacheKey(hole, 8, 20000)
	if k1 == k2 || k2 == k3 {
		t.Errorf("Keys should differ across shapes: %s %s %s", k1, k2, k3)
	}
}

func TestPreflopCacheRoundtrip(t *testing.T) {
	cache, err := newPreflopCache(4)
	if err != nil {
		t.Fatalf("newPreflopCache returned error [%s]", err)
	}

	if _, exists := cache.Get("AA:8:10000"); exists {
		t.Fatal("Empty cache should miss")
	}

	want := Result{Wins: 3000, Splits: 100, Trials: 10000}
	cache.Add("AA:8:10000", want)
	got, exists := cache.Get("AA:8:10000")
	if !exists {
		t.Fatal("Cache should hit after Add")
	}
	if got != want {
		t.Errorf("Expected %+v, actual %+v", want, got)
	}
}

func TestPreflopCacheRejectsBadSize(t *testing.T) {
	if _, err := newPreflopCache(0); err == nil {
		t.Fatal("newPreflopCache(0) should fail")
	}
}
