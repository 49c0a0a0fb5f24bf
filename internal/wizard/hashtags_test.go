package wizard

import (
	"reflect"
	"testing"
)

func TestAddTags_SplitsTrimsAndPrefixes(t *testing.T) {
	got := AddTags(nil, "handmade, #artisan  wood\ncraft")
	want := []string{"#handmade", "#artisan", "#wood", "#craft"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AddTags = %v, want %v", got, want)
	}
}

func TestAddTags_SkipsExistingAndBatchDuplicates(t *testing.T) {
	existing := []string{"#a", "#b", "#c"}
	got := AddTags(existing, "a, b, c, d e f")
	want := []string{"#a", "#b", "#c", "#d", "#e", "#f"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AddTags = %v, want %v", got, want)
	}

	got = AddTags(nil, "dup dup #dup")
	if !reflect.DeepEqual(got, []string{"#dup"}) {
		t.Fatalf("expected in-batch dedupe, got %v", got)
	}
}

func TestAddTags_ReAddIsNoOp(t *testing.T) {
	existing := []string{"#wood"}
	for _, raw := range []string{"wood", "#wood,", "\n#wood\n"} {
		got := AddTags(existing, raw)
		if !reflect.DeepEqual(got, existing) {
			t.Fatalf("AddTags(%q) = %v, want unchanged %v", raw, got, existing)
		}
	}
}

func TestAddTags_PreservesExistingOrder(t *testing.T) {
	existing := []string{"#z", "#a"}
	got := AddTags(existing, "m")
	want := []string{"#z", "#a", "#m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AddTags = %v, want %v", got, want)
	}
}

func TestAddTags_EmptyAndSeparatorOnlyInput(t *testing.T) {
	existing := []string{"#keep"}
	for _, raw := range []string{"", "   ", ", ,\n"} {
		got := AddTags(existing, raw)
		if !reflect.DeepEqual(got, existing) {
			t.Fatalf("AddTags(%q) = %v, want %v", raw, got, existing)
		}
	}
}

func TestRemoveTagAt(t *testing.T) {
	existing := []string{"#a", "#b", "#c"}

	got := RemoveTagAt(existing, 1)
	if !reflect.DeepEqual(got, []string{"#a", "#c"}) {
		t.Fatalf("RemoveTagAt(1) = %v", got)
	}
	// input untouched
	if !reflect.DeepEqual(existing, []string{"#a", "#b", "#c"}) {
		t.Fatalf("input mutated: %v", existing)
	}

	for _, i := range []int{-1, 3} {
		got := RemoveTagAt(existing, i)
		if !reflect.DeepEqual(got, existing) {
			t.Fatalf("RemoveTagAt(%d) = %v, want unchanged", i, got)
		}
	}
}
