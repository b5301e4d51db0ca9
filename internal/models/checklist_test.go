package models

import "testing"

func TestDepressionScoresTotal(t *testing.T) {
	t.Run("zero scores", func(t *testing.T) {
		var s DepressionScores
		if got := s.Total(); got != 0 {
			t.Errorf("Total() = %d, want 0", got)
		}
	})

	t.Run("all twos", func(t *testing.T) {
		var s DepressionScores
		for _, item := range ChecklistItems {
			if !s.SetItem(item.Key, 2) {
				t.Fatalf("SetItem(%q) returned false", item.Key)
			}
		}
		if got := s.Total(); got != 50 {
			t.Errorf("Total() = %d, want 50", got)
		}
	})

	t.Run("all fours hit the maximum", func(t *testing.T) {
		var s DepressionScores
		for _, item := range ChecklistItems {
			s.SetItem(item.Key, 4)
		}
		if got := s.Total(); got != 100 {
			t.Errorf("Total() = %d, want 100", got)
		}
	})
}

func TestDepressionScoresItems(t *testing.T) {
	var s DepressionScores
	s.FeelingSad = 3
	s.WishingDead = 1

	items := s.Items()
	if len(items) != len(ChecklistItems) {
		t.Fatalf("Items() has %d entries, want %d", len(items), len(ChecklistItems))
	}
	if items["feelingSad"] != 3 {
		t.Errorf("items[feelingSad] = %d, want 3", items["feelingSad"])
	}
	if items["wishingDead"] != 1 {
		t.Errorf("items[wishingDead] = %d, want 1", items["wishingDead"])
	}

	// Every prompt key must map onto a struct field
	for _, item := range ChecklistItems {
		if _, ok := items[item.Key]; !ok {
			t.Errorf("Items() missing key %q", item.Key)
		}
	}
}

func TestSetItemUnknownKey(t *testing.T) {
	var s DepressionScores
	if s.SetItem("notAKey", 2) {
		t.Error("SetItem with unknown key returned true, want false")
	}
}

func TestDepressionLevel(t *testing.T) {
	tests := []struct {
		total int
		want  string
	}{
		{0, "No depression"},
		{5, "No depression"},
		{6, "Normal but unhappy"},
		{10, "Normal but unhappy"},
		{11, "Mild depression"},
		{16, "Borderline depression"},
		{20, "Borderline depression"},
		{21, "Mild depression"},
		{26, "Moderate depression"},
		{50, "Moderate depression"},
		{51, "Severe depression"},
		{75, "Severe depression"},
		{76, "Extreme depression"},
		{100, "Extreme depression"},
	}

	for _, tt := range tests {
		if got := DepressionLevel(tt.total); got != tt.want {
			t.Errorf("DepressionLevel(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestDistortionByID(t *testing.T) {
	t.Run("known id", func(t *testing.T) {
		d, ok := DistortionByID(1)
		if !ok {
			t.Fatal("DistortionByID(1) not found")
		}
		if d.Name != "All-or-nothing thinking" {
			t.Errorf("DistortionByID(1).Name = %q", d.Name)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, ok := DistortionByID(11); ok {
			t.Error("DistortionByID(11) found, want not found")
		}
		if _, ok := DistortionByID(0); ok {
			t.Error("DistortionByID(0) found, want not found")
		}
	})

	t.Run("catalog has ten entries", func(t *testing.T) {
		if len(CognitiveDistortions) != 10 {
			t.Errorf("catalog has %d entries, want 10", len(CognitiveDistortions))
		}
	})
}
