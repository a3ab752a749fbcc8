package domain

// CanViewOwner reports whether the requester may see data owned by the given
// user under the requester's resolved identity.
//
// The admin rule compares the two branch flags pairwise with OR, not as a
// branch-intersection check: an admin flagged (false,false) matches any owner
// that is also unflagged on either side. Existing data may rely on this, so
// the predicate is kept as-is.
func (id Identity) CanViewOwner(requester, owner *User) bool {
	switch id.Role {
	case RoleDirector:
		return true
	case RoleAdmin:
		return owner.Baitursynov == requester.Baitursynov || owner.Gagarina == requester.Gagarina
	default:
		return owner.ID == requester.ID
	}
}

// FilterAppointments narrows a candidate collection to the appointments the
// requester may see, preserving input order. The optional branch filter is
// applied first, then the role rule; neither ever produces an error.
func FilterAppointments(id Identity, requester *User, branch Branch, appts []Appointment) []Appointment {
	visible := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		if branch != BranchNone && !ownerInBranch(a.Owner, branch) {
			continue
		}
		if !id.canViewAppointment(requester, &a) {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}

func (id Identity) canViewAppointment(requester *User, a *Appointment) bool {
	switch id.Role {
	case RoleDirector:
		return true
	case RoleAdmin:
		if a.Owner == nil {
			return false
		}
		return id.CanViewOwner(requester, a.Owner)
	default:
		return a.UserID == requester.ID
	}
}

func ownerInBranch(owner *User, branch Branch) bool {
	if owner == nil {
		return false
	}
	if branch == BranchBaitursynov {
		return owner.Baitursynov
	}
	return owner.Gagarina
}
