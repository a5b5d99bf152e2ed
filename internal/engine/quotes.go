package engine

// dailyQuotes rotates with the calendar date: every open on the same day
// shows the same line, and tomorrow brings the next.
var dailyQuotes = []string{
	"Every count brings you one step closer to your goal.",
	"Your pace today is looking great.",
	"Drop by drop, a whole sea gathers.",
	"Success is small steps repeated every day.",
	"Believe in yourself — the counter is with you.",
	"Never give up; every tap is progress.",
	"Patience is the greatest virtue. Keep counting.",
	"The end of the road is bright. Keep going.",
	"Discipline is the bridge between goals and success.",
	"Today is your brightest counting day yet.",
}

// QuoteOfDay picks the quote for a calendar date by hashing the date string
// (sum of its bytes) into the table.
func QuoteOfDay(date string) string {
	sum := 0
	for _, b := range []byte(date) {
		sum += int(b)
	}
	return dailyQuotes[sum%len(dailyQuotes)]
}
