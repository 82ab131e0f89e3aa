package view

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders t the way the fa-IR locale prints a short date:
// Jalali calendar, year/month/day, Persian digits, no zero padding.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	y, m, d := t.Date()
	jy, jm, jd := gregorianToJalali(y, int(m), d)
	return PersianDigits(strconv.Itoa(jy) + "/" + strconv.Itoa(jm) + "/" + strconv.Itoa(jd))
}

// PersianDigits replaces ASCII digits with Extended Arabic-Indic digits.
func PersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}

var gregorianDaysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// gregorianToJalali uses the 33-year arithmetic cycle, exact for 1800-2256 AD.
func gregorianToJalali(gy, gm, gd int) (int, int, int) {
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + gd + gregorianDaysBeforeMonth[gm-1]

	jy := -1595 + 33*(days/12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		return jy, 1 + days/31, 1 + days%31
	}
	return jy, 7 + (days-186)/30, 1 + (days-186)%30
}
