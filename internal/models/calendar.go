package models

import "fmt"

// CalendarMonths is the fixed 16-name calendar used by voyage
// configuration and the calendar adapter (spec.md §6).
var CalendarMonths = []string{
	"Deepwinter", "Thawmonth", "Springrise", "Bloomtide",
	"Greengale", "Sunhigh", "Hearthmonth", "Highsummer",
	"Amberfall", "Harvestide", "Rustmonth", "Frostgather",
	"Graytide", "Longnight", "Starfall", "Yearsend",
}

// DaysPerMonth is the fixed length of every calendar month.
const DaysPerMonth = 24

// CalendarDate is a date in the fixed 16-month calendar.
type CalendarDate struct {
	Year  int
	Month string
	Day   int
}

// MonthIndex returns the zero-based index of the date's month, or -1 if
// the month name is not recognized.
func (d CalendarDate) MonthIndex() int {
	for i, m := range CalendarMonths {
		if m == d.Month {
			return i
		}
	}
	return -1
}

// Valid reports whether the date's month is a recognized calendar month
// and the day falls within [1, DaysPerMonth].
func (d CalendarDate) Valid() bool {
	return d.MonthIndex() >= 0 && d.Day >= 1 && d.Day <= DaysPerMonth
}

// String renders the date as "Day Month, Year".
func (d CalendarDate) String() string {
	return fmt.Sprintf("%d %s, %d", d.Day, d.Month, d.Year)
}

// AddDay advances the date by one day, rolling over month and year
// boundaries according to the fixed 16×24-day calendar.
func (d CalendarDate) AddDay() CalendarDate {
	idx := d.MonthIndex()
	if idx < 0 {
		idx = 0
	}
	day := d.Day + 1
	month := idx
	year := d.Year
	if day > DaysPerMonth {
		day = 1
		month++
		if month >= len(CalendarMonths) {
			month = 0
			year++
		}
	}
	return CalendarDate{Year: year, Month: CalendarMonths[month], Day: day}
}
