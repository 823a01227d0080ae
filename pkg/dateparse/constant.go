package dateparse

// ISODate is the calendar-date wire format used for task due dates.
const ISODate = "2006-01-02"

// DefaultTimezone anchors "today" for relative-date resolution.
const DefaultTimezone = "Asia/Almaty"

// DefaultInferOffsetDays is the guaranteed fallback when nothing in the text
// resolves: reference date + 3 days.
const DefaultInferOffsetDays = 3

// weekdayIndex maps weekday names to indices, Monday=0..Sunday=6. Russian
// entries include the declined forms used after "в"/"к" ("в пятницу",
// "к среде").
var weekdayIndex = map[string]int{
	"понедельник":  0,
	"понедельнику": 0,
	"вторник":      1,
	"вторнику":     1,
	"среда":        2,
	"среду":        2,
	"среде":        2,
	"четверг":      3,
	"четвергу":     3,
	"пятница":      4,
	"пятницу":      4,
	"пятнице":      4,
	"суббота":      5,
	"субботу":      5,
	"субботе":      5,
	"воскресенье":  6,
	"воскресенью":  6,

	"monday":      0,
	"tuesday":     1,
	"wednesday":   2,
	"thursday":    3,
	"friday":      4,
	"saturday":    5,
	"sunday":      6,
}

// weekdayScan lists weekday substrings recognized inside running text,
// including Russian declined forms ("в пятницу", "к среде"). Scan order is
// fixed so inference stays deterministic.
var weekdayScan = []struct {
	word string
	idx  int
}{
	{"понедельник", 0},
	{"вторник", 1},
	{"среду", 2},
	{"среда", 2},
	{"среде", 2},
	{"четверг", 3},
	{"пятницу", 4},
	{"пятница", 4},
	{"пятнице", 4},
	{"субботу", 5},
	{"суббота", 5},
	{"воскресенье", 6},
	{"monday", 0},
	{"tuesday", 1},
	{"wednesday", 2},
	{"thursday", 3},
	{"friday", 4},
	{"saturday", 5},
	{"sunday", 6},
}

// thisWeekPhrases all resolve to reference date + 7 days.
var thisWeekPhrases = []string{
	"на этой неделе",
	"в течение недели",
	"this week",
	"within the week",
}
