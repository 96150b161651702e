package model

import (
	"errors"
	"testing"
)

func TestBirthMomentValidate(t *testing.T) {
	tests := []struct {
		name      string
		birth     BirthMoment
		wantField string // empty means valid
	}{
		{"typical moment", BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30}, ""},
		{"lower bounds", BirthMoment{Year: 1900, Month: 1, Day: 1}, ""},
		{"upper bounds", BirthMoment{Year: 2100, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, TimezoneOffset: 14}, ""},
		{"leap day in a leap year", BirthMoment{Year: 2000, Month: 2, Day: 29}, ""},
		{"half-hour timezone", BirthMoment{Year: 1990, Month: 5, Day: 15, TimezoneOffset: 5.5}, ""},
		{"year too early", BirthMoment{Year: 1899, Month: 1, Day: 1}, "year"},
		{"year too late", BirthMoment{Year: 2101, Month: 1, Day: 1}, "year"},
		{"month zero", BirthMoment{Year: 1990, Month: 0, Day: 1}, "month"},
		{"month thirteen", BirthMoment{Year: 1990, Month: 13, Day: 1}, "month"},
		{"day zero", BirthMoment{Year: 1990, Month: 5, Day: 0}, "day"},
		{"day 31 in a 30-day month", BirthMoment{Year: 1990, Month: 4, Day: 31}, "day"},
		{"leap day in a common year", BirthMoment{Year: 1990, Month: 2, Day: 29}, "day"},
		{"leap day in a century year", BirthMoment{Year: 1900, Month: 2, Day: 29}, "day"},
		{"hour 24", BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 24}, "hour"},
		{"negative minute", BirthMoment{Year: 1990, Month: 5, Day: 15, Minute: -1}, "minute"},
		{"second 60", BirthMoment{Year: 1990, Month: 5, Day: 15, Second: 60}, "second"},
		{"timezone below range", BirthMoment{Year: 1990, Month: 5, Day: 15, TimezoneOffset: -12.5}, "timezone_offset"},
		{"timezone above range", BirthMoment{Year: 1990, Month: 5, Day: 15, TimezoneOffset: 14.5}, "timezone_offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.birth.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate(%+v) = %v, want nil", tt.birth, err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate(%+v) = %v, want validation error", tt.birth, err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Validate(%+v) field = %q, want %q", tt.birth, vErr.Field, tt.wantField)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // century, not divisible by 400
		{1996, true},
		{1997, false},
		{2024, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	b := BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30, TimezoneOffset: 5.5}
	want := "1990-05-15T14:30:00@+5.50"
	if got := b.CacheKey(); got != want {
		t.Errorf("CacheKey() = %q, want %q", got, want)
	}

	// Distinct moments must not collide
	other := BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30, TimezoneOffset: -5.5}
	if other.CacheKey() == b.CacheKey() {
		t.Error("cache keys collide for different timezone offsets")
	}
}

func TestSubscriptionValidate(t *testing.T) {
	birth := BirthMoment{Year: 1990, Month: 5, Day: 15}

	tests := []struct {
		name    string
		sub     Subscription
		wantErr bool
	}{
		{"valid email", Subscription{Channel: ChannelEmail, Address: "user@example.com", Birth: birth}, false},
		{"valid telegram", Subscription{Channel: ChannelTelegram, ChatID: 42, Birth: birth}, false},
		{"email without address", Subscription{Channel: ChannelEmail, Birth: birth}, true},
		{"telegram without chat", Subscription{Channel: ChannelTelegram, Birth: birth}, true},
		{"unknown channel", Subscription{Channel: "pigeon", Address: "roof", Birth: birth}, true},
		{"invalid birth", Subscription{Channel: ChannelEmail, Address: "user@example.com", Birth: BirthMoment{Year: 1600, Month: 1, Day: 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
