package domain

import "testing"

func TestCanViewOwner(t *testing.T) {
	director := &User{ID: 1, IsSuperuser: true}
	adminBait := &User{ID: 2, IsAdmin: true, Baitursynov: true}
	adminUnflagged := &User{ID: 3, IsAdmin: true}
	employeeBait := &User{ID: 4, Baitursynov: true}
	employeeGag := &User{ID: 5, Gagarina: true}
	unflagged := &User{ID: 6}

	cases := []struct {
		name      string
		requester *User
		owner     *User
		want      bool
	}{
		{"director sees everyone", director, employeeGag, true},
		{"admin sees same branch", adminBait, employeeBait, true},
		{"admin sees owner matching on either flag", adminBait, unflagged, true},
		{"admin blocked when both flags differ", adminBait, &User{ID: 7, Baitursynov: false, Gagarina: true}, false},
		{"unflagged admin matches unflagged owner", adminUnflagged, unflagged, true},
		{"employee sees self", employeeBait, employeeBait, true},
		{"employee blocked from others", employeeBait, employeeGag, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := ResolveIdentity(tc.requester)
			if got := id.CanViewOwner(tc.requester, tc.owner); got != tc.want {
				t.Fatalf("CanViewOwner() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterAppointments(t *testing.T) {
	employeeBait := &User{ID: 4, Baitursynov: true}
	employeeGag := &User{ID: 5, Gagarina: true}
	director := &User{ID: 1, IsSuperuser: true}
	adminBait := &User{ID: 2, IsAdmin: true, Baitursynov: true}

	appts := []Appointment{
		{ID: 10, UserID: 4, Owner: employeeBait},
		{ID: 11, UserID: 5, Owner: employeeGag},
		{ID: 12, UserID: 4, Owner: employeeBait},
	}

	t.Run("director sees all in input order", func(t *testing.T) {
		got := FilterAppointments(ResolveIdentity(director), director, BranchNone, appts)
		wantIDs := []int64{10, 11, 12}
		assertIDs(t, got, wantIDs)
	})

	t.Run("branch filter applies before role rule", func(t *testing.T) {
		got := FilterAppointments(ResolveIdentity(director), director, BranchGagarina, appts)
		assertIDs(t, got, []int64{11})
	})

	t.Run("employee sees only own appointments", func(t *testing.T) {
		got := FilterAppointments(ResolveIdentity(employeeBait), employeeBait, BranchNone, appts)
		assertIDs(t, got, []int64{10, 12})
	})

	t.Run("admin scoped by branch flags", func(t *testing.T) {
		got := FilterAppointments(ResolveIdentity(adminBait), adminBait, BranchNone, appts)
		assertIDs(t, got, []int64{10, 12})
	})

	t.Run("admin cannot judge appointment without owner", func(t *testing.T) {
		orphan := []Appointment{{ID: 20, UserID: 9, Owner: nil}}
		got := FilterAppointments(ResolveIdentity(adminBait), adminBait, BranchNone, orphan)
		if len(got) != 0 {
			t.Fatalf("expected no visible appointments, got %d", len(got))
		}
	})

	t.Run("branch filter drops ownerless rows", func(t *testing.T) {
		orphan := []Appointment{{ID: 21, UserID: 1, Owner: nil}}
		got := FilterAppointments(ResolveIdentity(director), director, BranchBaitursynov, orphan)
		if len(got) != 0 {
			t.Fatalf("expected no visible appointments, got %d", len(got))
		}
	})
}

func assertIDs(t *testing.T, got []Appointment, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d appointments, want %d", len(got), len(want))
	}
	for i, appt := range got {
		if appt.ID != want[i] {
			t.Fatalf("appointment[%d].ID = %d, want %d", i, appt.ID, want[i])
		}
	}
}

func TestNetAmount(t *testing.T) {
	price := 200
	discount := 25

	cases := []struct {
		name string
		appt Appointment
		want float64
	}{
		{"price with discount", Appointment{Price: &price, Discount: &discount}, 150},
		{"nil discount counts as zero", Appointment{Price: &price}, 200},
		{"nil price counts as zero", Appointment{Discount: &discount}, 0},
		{"both nil", Appointment{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.appt.NetAmount(); got != tc.want {
				t.Fatalf("NetAmount() = %v, want %v", got, tc.want)
			}
		})
	}
}
