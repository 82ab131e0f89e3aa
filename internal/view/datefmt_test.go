package view

import (
	"testing"
	"time"
)

func TestGregorianToJalali(t *testing.T) {
	cases := []struct {
		gy, gm, gd int
		jy, jm, jd int
	}{
		{2024, 3, 20, 1403, 1, 1},
		{2024, 3, 19, 1402, 12, 29},
		{2023, 3, 21, 1402, 1, 1},
		{2024, 10, 15, 1403, 7, 24},
		{2025, 3, 20, 1403, 12, 30},
		{2000, 1, 1, 1378, 10, 11},
	}
	for _, tc := range cases {
		jy, jm, jd := gregorianToJalali(tc.gy, tc.gm, tc.gd)
		if jy != tc.jy || jm != tc.jm || jd != tc.jd {
			t.Errorf("%d-%d-%d: got %d/%d/%d want %d/%d/%d", tc.gy, tc.gm, tc.gd, jy, jm, jd, tc.jy, tc.jm, tc.jd)
		}
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2024, 10, 15, 8, 0, 0, 0, time.UTC))
	if got != "۱۴۰۳/۷/۲۴" {
		t.Fatalf("FormatDate = %q", got)
	}
	if FormatDate(time.Time{}) != "" {
		t.Fatalf("zero time should render empty")
	}
}

func TestPersianDigits(t *testing.T) {
	if got := PersianDigits("a1b90"); got != "a۱b۹۰" {
		t.Fatalf("PersianDigits = %q", got)
	}
}
