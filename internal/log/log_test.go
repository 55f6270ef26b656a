package log

import "testing"

func TestSetLevel(t *testing.T) {
	original := GetLevel()
	defer SetLevel(original)

	t.Run("updates the global level", func(t *testing.T) {
		SetLevel(LevelDebug)
		if GetLevel() != LevelDebug {
			t.Errorf("GetLevel() = %v, want %v", GetLevel(), LevelDebug)
		}

		SetLevel(LevelError)
		if GetLevel() != LevelError {
			t.Errorf("GetLevel() = %v, want %v", GetLevel(), LevelError)
		}
	})
}
