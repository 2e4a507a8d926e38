package normalize

import (
	"reflect"
	"testing"
)

func TestParseStringList(t *testing.T) {
	got := ParseStringList("a@x.com; b@x.com, a@x.com")
	want := []string{"a@x.com", "b@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected deduplicated list, got %v", got)
	}
}

func TestParseStringList_JSONArray(t *testing.T) {
	got := ParseStringList(`["(51) 3333-0000","(51) 98888-0000"]`)
	want := []string{"(51) 3333-0000", "(51) 98888-0000"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected list: %v", got)
	}
}

func TestParseStringList_PhonesStayTextual(t *testing.T) {
	// Dedup is textual: differently formatted variants of one number remain
	// separate entries.
	got := ParseStringList("51 3333-0000; 5133330000")
	if len(got) != 2 {
		t.Fatalf("expected both variants kept, got %v", got)
	}
}

func TestParseStringList_Empty(t *testing.T) {
	if got := ParseStringList(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := ParseStringList(" ; , "); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
