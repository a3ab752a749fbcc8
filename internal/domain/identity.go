package domain

// Role enumerates the three access levels.
type Role string

const (
	RoleDirector Role = "director"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Branch enumerates the two physical locations. Directors carry BranchNone.
type Branch string

const (
	BranchNone        Branch = ""
	BranchBaitursynov Branch = "baitursynov"
	BranchGagarina    Branch = "gagarina"
)

// Identity is the resolved role/branch pair for an authenticated user. It is
// computed once per request by the auth middleware and carried on the
// principal; nothing downstream re-derives role from the raw flags.
type Identity struct {
	Role   Role
	Branch Branch
}

// ResolveIdentity derives the identity from the user's privilege and branch
// flags. is_superuser wins regardless of any other flag; otherwise is_admin
// decides between admin and employee. Pure and total.
func ResolveIdentity(u *User) Identity {
	if u.IsSuperuser {
		return Identity{Role: RoleDirector, Branch: BranchNone}
	}
	if u.IsAdmin {
		return Identity{Role: RoleAdmin, Branch: branchOf(u)}
	}
	return Identity{Role: RoleEmployee, Branch: branchOf(u)}
}

// branchOf checks baitursynov first; the gagarina flag is not independently
// consulted when baitursynov is set.
func branchOf(u *User) Branch {
	if u.Baitursynov {
		return BranchBaitursynov
	}
	return BranchGagarina
}

// ParseBranch validates an optional branch filter value. Anything other than
// the two known branch names is ignored rather than rejected.
func ParseBranch(val string) (Branch, bool) {
	switch Branch(val) {
	case BranchBaitursynov, BranchGagarina:
		return Branch(val), true
	default:
		return BranchNone, false
	}
}
