package thoughts

import "testing"

func TestParseEmotions(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		emotions, err := ParseEmotions("anxious:80, sad:40")
		if err != nil {
			t.Fatalf("ParseEmotions() error: %v", err)
		}
		if len(emotions) != 2 {
			t.Fatalf("got %d emotions, want 2", len(emotions))
		}
		if emotions[0].Name != "anxious" || emotions[0].Intensity != 80 {
			t.Errorf("emotions[0] = %+v", emotions[0])
		}
		if emotions[1].Name != "sad" || emotions[1].Intensity != 40 {
			t.Errorf("emotions[1] = %+v", emotions[1])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		emotions, err := ParseEmotions("  ")
		if err != nil || emotions != nil {
			t.Errorf("ParseEmotions(blank) = %v, %v", emotions, err)
		}
	})

	t.Run("missing intensity", func(t *testing.T) {
		if _, err := ParseEmotions("anxious"); err == nil {
			t.Error("ParseEmotions without colon succeeded, want error")
		}
	})

	t.Run("non-numeric intensity", func(t *testing.T) {
		if _, err := ParseEmotions("anxious:high"); err == nil {
			t.Error("ParseEmotions with bad number succeeded, want error")
		}
	})
}

func TestParseDistortions(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		ids, err := ParseDistortions("1, 5,10")
		if err != nil {
			t.Fatalf("ParseDistortions() error: %v", err)
		}
		want := []int{1, 5, 10}
		if len(ids) != len(want) {
			t.Fatalf("got %v, want %v", ids, want)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("ids = %v, want %v", ids, want)
			}
		}
	})

	t.Run("unknown number rejected", func(t *testing.T) {
		if _, err := ParseDistortions("11"); err == nil {
			t.Error("ParseDistortions(11) succeeded, want error")
		}
		if _, err := ParseDistortions("0"); err == nil {
			t.Error("ParseDistortions(0) succeeded, want error")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		ids, err := ParseDistortions("")
		if err != nil || ids != nil {
			t.Errorf("ParseDistortions(empty) = %v, %v", ids, err)
		}
	})
}
