package retry

import (
	"errors"
	"testing"
	"time"
)

func TestDelay(t *testing.T) {
	tests := []struct {
		name    string
		base    time.Duration
		attempt int
		want    time.Duration
	}{
		{"first attempt", 750 * time.Millisecond, 1, 750 * time.Millisecond},
		{"second attempt", 750 * time.Millisecond, 2, 1500 * time.Millisecond},
		{"third attempt", 750 * time.Millisecond, 3, 2250 * time.Millisecond},
		{"zero attempt", 750 * time.Millisecond, 0, 0},
		{"negative attempt", 750 * time.Millisecond, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delay(tt.base, tt.attempt); got != tt.want {
				t.Errorf("Delay(%v, %d) = %v, want %v", tt.base, tt.attempt, got, tt.want)
			}
		})
	}
}

func TestDo(t *testing.T) {
	t.Run("succeeds immediately", func(t *testing.T) {
		calls := 0
		err := Do(func() error {
			calls++
			return nil
		}, 3, time.Millisecond)
		if err != nil {
			t.Errorf("Do() = %v, want nil", err)
		}
		if calls != 1 {
			t.Errorf("op ran %d times, want 1", calls)
		}
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, 3, time.Millisecond)
		if err != nil {
			t.Errorf("Do() = %v, want nil", err)
		}
		if calls != 3 {
			t.Errorf("op ran %d times, want 3", calls)
		}
	})

	t.Run("returns the final error when exhausted", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := Do(func() error {
			calls++
			return wantErr
		}, 3, time.Millisecond)
		if !errors.Is(err, wantErr) {
			t.Errorf("Do() = %v, want %v", err, wantErr)
		}
		if calls != 3 {
			t.Errorf("op ran %d times, want 3", calls)
		}
	})

	t.Run("clamps maxAttempts to at least one", func(t *testing.T) {
		calls := 0
		_ = Do(func() error {
			calls++
			return errors.New("nope")
		}, 0, time.Millisecond)
		if calls != 1 {
			t.Errorf("op ran %d times, want 1", calls)
		}
	})
}

func TestDoValue(t *testing.T) {
	t.Run("returns the value on success", func(t *testing.T) {
		calls := 0
		got, err := DoValue(func() (string, error) {
			calls++
			if calls < 2 {
				return "", errors.New("transient")
			}
			return "ok", nil
		}, 3, time.Millisecond)
		if err != nil {
			t.Errorf("DoValue() error = %v, want nil", err)
		}
		if got != "ok" {
			t.Errorf("DoValue() = %q, want %q", got, "ok")
		}
	})

	t.Run("returns zero value when exhausted", func(t *testing.T) {
		got, err := DoValue(func() (int, error) {
			return 42, errors.New("always")
		}, 2, time.Millisecond)
		if err == nil {
			t.Error("expected an error")
		}
		_ = got
	})
}
