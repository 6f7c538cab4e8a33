package model

import "testing"

func TestView_IsValid(t *testing.T) {
	tests := []struct {
		view     View
		expected bool
	}{
		{ViewHome, true},
		{ViewCreate, true},
		{ViewSettings, true},
		{View("detail"), false},
		{View(""), false},
	}

	for _, test := range tests {
		if result := test.view.IsValid(); result != test.expected {
			t.Errorf("View(%s).IsValid() = %v, expected %v", test.view, result, test.expected)
		}
	}
}

func TestViews_Order(t *testing.T) {
	views := Views()
	expected := []View{ViewHome, ViewCreate, ViewSettings}
	if len(views) != len(expected) {
		t.Fatalf("Expected %d views, got %d", len(expected), len(views))
	}
	for i := range expected {
		if views[i] != expected[i] {
			t.Errorf("Views()[%d] = %s, expected %s", i, views[i], expected[i])
		}
	}
}
