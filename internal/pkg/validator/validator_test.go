package validator

import (
	"errors"
	"testing"
)

type feedbackInput struct {
	BookingID int64  `json:"bookingId" validate:"required,min=1"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required"`
}

type statusInput struct {
	Status string `json:"status" validate:"required,shade"`
}

func init() {
	RegisterValues("shade", func(s string) bool { return s == "LIGHT" || s == "DARK" }, "Invalid shade")
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	errs := Validate(&feedbackInput{BookingID: 1, Rating: 6})
	if errs["rating"] == "" {
		t.Fatalf("expected rating error, got %v", errs)
	}
	if errs["comment"] != "This field is required" {
		t.Fatalf("expected comment required error, got %v", errs)
	}
	if _, ok := errs["bookingId"]; ok {
		t.Fatalf("bookingId is valid, got %v", errs)
	}
}

func TestStructReturnsErrors(t *testing.T) {
	err := Struct(&statusInput{Status: "GREY"})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T", err)
	}
	if verrs["status"] != "Invalid shade" {
		t.Fatalf("expected registered message, got %v", verrs)
	}

	if err := Struct(&statusInput{Status: "DARK"}); err != nil {
		t.Fatalf("expected valid status, got %v", err)
	}
}
