package models

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"ORGANIZER": RoleOrganizer,
		"STUDENT":   RoleStudent,
		"organizer": RoleStudent,
		"ADMIN":     RoleStudent,
		"":          RoleStudent,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestRecruitmentStatus_Valid(t *testing.T) {
	for _, s := range []RecruitmentStatus{StatusActive, StatusPaused, StatusClosed} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if RecruitmentStatus("ARCHIVED").Valid() {
		t.Error("ARCHIVED should not be valid")
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{Email: "a@x.edu", PasswordHash: "supersecret", Name: "Ada", Role: RoleStudent}
	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for key := range m {
		if key == "password" || key == "passwordHash" {
			t.Errorf("serialized user exposes %q", key)
		}
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	j := JSON(`{"q1":"yes"}`)

	v, err := j.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned JSON
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if string(scanned) != `{"q1":"yes"}` {
		t.Errorf("scanned = %s", scanned)
	}

	out, err := json.Marshal(struct {
		Answers JSON `json:"answers"`
	}{Answers: j})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"answers":{"q1":"yes"}}` {
		t.Errorf("marshal = %s", out)
	}
}

func TestStringSlice_RoundTrip(t *testing.T) {
	s := StringSlice{"Backend", "Design"}

	v, err := s.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var scanned StringSlice
	if err := scanned.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != "Backend" || scanned[1] != "Design" {
		t.Errorf("scanned = %v", scanned)
	}
}
