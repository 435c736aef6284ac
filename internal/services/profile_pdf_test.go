package services

import (
	"bytes"
	"context"
	"testing"

	"advocates/internal/domain"
	"advocates/internal/domain/apperr"
)

func TestProfileSheet(t *testing.T) {
	store := &stubStore{byID: map[int64]domain.Advocate{
		3: {ID: 3, FirstName: "John", LastName: "Doe", City: "New York", Degree: "MD", Specialties: []string{"Cardiology"}, YearsOfExperience: 12, PhoneNumber: 5551234567},
	}}
	docs := ProfileDocService{Advocates: newService(store)}

	pdf, filename, err := docs.ProfileSheet(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "ADVOCATE_3_John_Doe.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestProfileSheetNotFound(t *testing.T) {
	docs := ProfileDocService{Advocates: newService(&stubStore{byID: map[int64]domain.Advocate{}})}

	_, _, err := docs.ProfileSheet(context.Background(), 42)
	if !apperr.IsKind(err, apperr.ResourceNotFound) {
		t.Fatalf("expected ResourceNotFound, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"John Doe":     "John_Doe",
		"  O'Brien  ":  "O_Brien",
		"a/b\\c":       "a_b_c",
		"__trimmed__":  "trimmed",
		"plain-name_1": "plain-name_1",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Fatalf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
}
