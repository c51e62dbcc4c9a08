package model

import "testing"

func TestRoomTypeCapacity(t *testing.T) {
	cases := []struct {
		roomType RoomType
		capacity int
		valid    bool
	}{
		{Simple, 1, true},
		{Doble, 2, true},
		{RoomType("suite"), 1, false},
		{RoomType(""), 1, false},
	}
	for _, tc := range cases {
		if got := tc.roomType.Capacity(); got != tc.capacity {
			t.Fatalf("%q: expected capacity %d, got %d", tc.roomType, tc.capacity, got)
		}
		if got := tc.roomType.Valid(); got != tc.valid {
			t.Fatalf("%q: expected valid=%v, got %v", tc.roomType, tc.valid, got)
		}
	}
}

func TestRoomIsAvailable(t *testing.T) {
	cases := []struct {
		roomType  RoomType
		occupants int64
		available bool
	}{
		{Simple, 0, true},
		{Simple, 1, false},
		{Doble, 0, true},
		{Doble, 1, true},
		{Doble, 2, false},
		{Doble, 3, false},
		{RoomType("suite"), 0, true},
		{RoomType("suite"), 1, false},
	}
	for _, tc := range cases {
		room := Room{Type: tc.roomType}
		if got := room.IsAvailable(tc.occupants); got != tc.available {
			t.Fatalf("%s with %d occupants: expected available=%v, got %v", tc.roomType, tc.occupants, tc.available, got)
		}
	}
}

func TestRoomOccupancy(t *testing.T) {
	room := Room{DTO: DTO{ID: 7}, Number: "101", Type: Doble}

	occ := room.Occupancy(1)
	if occ.RoomID != 7 || occ.Number != "101" || occ.Capacity != 2 || occ.Occupants != 1 || !occ.Available {
		t.Fatalf("unexpected occupancy: %+v", occ)
	}

	occ = room.Occupancy(2)
	if occ.Available {
		t.Fatalf("expected full room to be unavailable: %+v", occ)
	}
}

func TestGuestCheckedIn(t *testing.T) {
	roomID := uint(3)
	if (Guest{}).CheckedIn() {
		t.Fatal("guest without room should not be checked in")
	}
	if !(Guest{RoomID: &roomID}).CheckedIn() {
		t.Fatal("guest with room should be checked in")
	}
}
