package scheduling

import (
	"reflect"
	"testing"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := ParseInterval(start, end)
	if err != nil {
		t.Fatalf("ParseInterval(%q, %q): %v", start, end, err)
	}
	return iv
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660} // 10:00-11:00

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{600, 660}, true},
		{"contained", Interval{615, 645}, true},
		{"straddles start", Interval{570, 630}, true},
		{"straddles end", Interval{630, 690}, true},
		{"touches end", Interval{660, 720}, false}, // half-open: back to back is fine
		{"touches start", Interval{540, 600}, false},
		{"disjoint", Interval{720, 780}, false},
	}

	for _, c := range cases {
		if got := base.Overlaps(c.other); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSlotStarts_MondayScenario(t *testing.T) {
	// Professional works 09:00-18:00, 60-minute service, existing booking
	// at 10:00-11:00. 10:00 and 10:30 are blocked by interval overlap; the
	// last bookable start is 17:00.
	window := mustInterval(t, "09:00", "18:00")
	busy := []Interval{mustInterval(t, "10:00", "11:00")}

	got := MergeSlotStarts(SlotStarts(window, 60, 30, busy))

	want := []string{
		"09:00", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestSlotStarts_StartEqualityIsNotEnough(t *testing.T) {
	// A 90-minute booking at 09:00 must block 09:30 and 10:00 even though
	// neither shares its start time.
	window := mustInterval(t, "09:00", "12:00")
	busy := []Interval{mustInterval(t, "09:00", "10:30")}

	got := MergeSlotStarts(SlotStarts(window, 30, 30, busy))

	want := []string{"10:30", "11:00", "11:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestSlotStarts_DurationMustFitBeforeClose(t *testing.T) {
	// 90-minute service in a 09:00-11:00 window: only 09:00 and 09:30 leave
	// room before closing; 10:00 is before closing but must be excluded.
	window := mustInterval(t, "09:00", "11:00")

	got := MergeSlotStarts(SlotStarts(window, 90, 30, nil))

	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestSlotStarts_DurationExceedsWindow(t *testing.T) {
	window := mustInterval(t, "09:00", "10:00")
	if got := SlotStarts(window, 90, 30, nil); got != nil {
		t.Errorf("expected no slots, got %v", got)
	}
}

func TestSlotStarts_LunchBreakAsBusyInterval(t *testing.T) {
	// 08:00-12:00 with lunch 10:00-11:00 blocks every start whose interval
	// touches the lunch window.
	window := mustInterval(t, "08:00", "12:00")
	busy := []Interval{mustInterval(t, "10:00", "11:00")}

	got := MergeSlotStarts(SlotStarts(window, 60, 30, busy))

	want := []string{"08:00", "08:30", "09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestSlotStarts_Deterministic(t *testing.T) {
	window := mustInterval(t, "09:00", "18:00")
	busy := []Interval{
		mustInterval(t, "10:00", "11:00"),
		mustInterval(t, "14:30", "15:00"),
	}

	first := MergeSlotStarts(SlotStarts(window, 30, 30, busy))
	second := MergeSlotStarts(SlotStarts(window, 30, 30, busy))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different slot lists: %v vs %v", first, second)
	}
}

func TestMergeSlotStarts_UnionAcrossWindows(t *testing.T) {
	// Two schedule rows on the same weekday contribute the union of their
	// slots, sorted and deduplicated.
	morning := SlotStarts(mustInterval(t, "09:00", "12:00"), 30, 30, nil)
	afternoon := SlotStarts(mustInterval(t, "11:00", "14:00"), 30, 30, nil)

	got := MergeSlotStarts(morning, afternoon)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merged slots = %v, want %v", got, want)
	}
}
