package domain

import "testing"

func TestValidateTimeWindow(t *testing.T) {
	cases := []struct {
		name             string
		date, start, end string
		wantErr          bool
	}{
		{"valid", "2024-05-01", "09:00", "10:00", false},
		{"one minute", "2024-05-01", "09:00", "09:01", false},
		{"end before start", "2024-05-01", "10:00", "09:00", true},
		{"zero-length window", "2024-05-01", "09:00", "09:00", true},
		{"bad date", "01/05/2024", "09:00", "10:00", true},
		{"bad start", "2024-05-01", "9am", "10:00", true},
		{"bad end", "2024-05-01", "09:00", "25:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTimeWindow(tc.date, tc.start, tc.end)
			if tc.wantErr && err != ErrInvalidTimeRange {
				t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSortSessionsChronologically(t *testing.T) {
	sessions := []*Session{
		{ID: "c", Date: "2024-05-01", StartTime: "09:00"},
		{ID: "b", Date: "2024-05-01", StartTime: "08:00"},
		{ID: "a", Date: "2024-04-30", StartTime: "23:00"},
	}

	SortSessionsChronologically(sessions)

	want := []string{"a", "b", "c"}
	for i, s := range sessions {
		if s.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], s.ID)
		}
	}
}

func TestSortSessionsChronologically_StableOnTies(t *testing.T) {
	sessions := []*Session{
		{ID: "first", Date: "2024-05-01", StartTime: "09:00"},
		{ID: "second", Date: "2024-05-01", StartTime: "09:00"},
	}

	SortSessionsChronologically(sessions)

	if sessions[0].ID != "first" || sessions[1].ID != "second" {
		t.Fatal("sessions sharing date and time must keep input order")
	}
}

func TestSortUsersByUsername_CaseSensitive(t *testing.T) {
	users := []User{
		{Username: "adam"},
		{Username: "Zelda"},
		{Username: "zoe"},
	}

	SortUsersByUsername(users)

	// Uppercase sorts before lowercase in a case-sensitive collation.
	want := []string{"Zelda", "adam", "zoe"}
	for i, u := range users {
		if u.Username != want[i] {
			t.Fatalf("expected order %v, got %s at %d", want, u.Username, i)
		}
	}
}
