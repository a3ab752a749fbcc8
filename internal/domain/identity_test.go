package domain

import "testing"

func TestResolveIdentity(t *testing.T) {
	cases := []struct {
		name string
		user User
		want Identity
	}{
		{
			name: "superuser becomes director with no branch",
			user: User{IsSuperuser: true, IsAdmin: true, Baitursynov: true},
			want: Identity{Role: RoleDirector, Branch: BranchNone},
		},
		{
			name: "admin with baitursynov flag",
			user: User{IsAdmin: true, Baitursynov: true},
			want: Identity{Role: RoleAdmin, Branch: BranchBaitursynov},
		},
		{
			name: "admin without branch flags defaults to gagarina",
			user: User{IsAdmin: true},
			want: Identity{Role: RoleAdmin, Branch: BranchGagarina},
		},
		{
			name: "plain user becomes employee",
			user: User{Gagarina: true},
			want: Identity{Role: RoleEmployee, Branch: BranchGagarina},
		},
		{
			name: "baitursynov flag wins when both flags set",
			user: User{Baitursynov: true, Gagarina: true},
			want: Identity{Role: RoleEmployee, Branch: BranchBaitursynov},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveIdentity(&tc.user)
			if got != tc.want {
				t.Fatalf("ResolveIdentity() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseBranch(t *testing.T) {
	cases := []struct {
		val    string
		want   Branch
		wantOK bool
	}{
		{"baitursynov", BranchBaitursynov, true},
		{"gagarina", BranchGagarina, true},
		{"", BranchNone, false},
		{"downtown", BranchNone, false},
	}

	for _, tc := range cases {
		got, ok := ParseBranch(tc.val)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ParseBranch(%q) = (%q, %v), want (%q, %v)", tc.val, got, ok, tc.want, tc.wantOK)
		}
	}
}
