package domain

import "testing"

func TestTestimonialStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    TestimonialStatus
		to      TestimonialStatus
		allowed bool
	}{
		{TestimonialPending, TestimonialApproved, true},
		{TestimonialPending, TestimonialRejected, true},
		{TestimonialPending, TestimonialPending, false},
		{TestimonialApproved, TestimonialRejected, false},
		{TestimonialApproved, TestimonialPending, false},
		{TestimonialRejected, TestimonialApproved, false},
		{TestimonialRejected, TestimonialPending, false},
		{TestimonialStatus("bogus"), TestimonialApproved, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleUser.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("root").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
}

func TestAuthUser_IsAdmin(t *testing.T) {
	if !(&AuthUser{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("admin role must be admin")
	}
	if (&AuthUser{Role: RoleUser}).IsAdmin() {
		t.Fatalf("user role must not be admin")
	}
	if (&AuthUser{}).IsAdmin() {
		t.Fatalf("empty role must not be admin")
	}
}
