package namefile

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{"valid date", "20200101", Date{Year: 2020, Month: time.January, Day: 1}, false},
		{"leap day", "20240229", Date{Year: 2024, Month: time.February, Day: 29}, false},
		{"month out of range", "20201301", Date{}, true},
		{"day out of range", "20200230", Date{}, true},
		{"too short", "2020011", Date{}, true},
		{"not digits", "2020010x", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateString_ZeroPads(t *testing.T) {
	d := Date{Year: 33, Month: time.March, Day: 7}
	if got := d.String(); got != "00330307" {
		t.Errorf("String() = %q, want %q", got, "00330307")
	}
}

func TestDateOf_TruncatesTimeOfDay(t *testing.T) {
	stamp := time.Date(2022, time.December, 31, 23, 59, 59, 999, time.UTC)
	want := Date{Year: 2022, Month: time.December, Day: 31}
	if got := DateOf(stamp); got != want {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestDateTime_UTCMidnight(t *testing.T) {
	d := Date{Year: 2020, Month: time.June, Day: 15}
	got := d.Time()
	want := time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestWithToday_ReadsClockAtConstruction(t *testing.T) {
	restore := todayFunc
	todayFunc = func() time.Time {
		return time.Date(2023, time.May, 9, 14, 30, 0, 0, time.UTC)
	}
	defer func() { todayFunc = restore }()

	d, err := New("foo", WithToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	date, ok := d.Date()
	if !ok {
		t.Fatal("Date() reports absent after WithToday")
	}
	want := Date{Year: 2023, Month: time.May, Day: 9}
	if date != want {
		t.Errorf("Date() = %v, want %v", date, want)
	}
	if got := d.Name(); got != "foo.20230509" {
		t.Errorf("Name() = %q, want %q", got, "foo.20230509")
	}
}
