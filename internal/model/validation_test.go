package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validInput() FeedbackInput {
	return FeedbackInput{
		TargetType: TargetEvent,
		TargetID:   "event1",
		TargetName: "Tech Conference 2024",
		Rating:     5,
		Comment:    "Great talks all day",
		Category:   CategoryGeneral,
	}
}

func TestFeedbackInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *FeedbackInput)
		wantField string
	}{
		{name: "valid", mutate: func(in *FeedbackInput) {}},
		{name: "missing-target-type", mutate: func(in *FeedbackInput) { in.TargetType = "" }, wantField: "targetType"},
		{name: "unknown-target-type", mutate: func(in *FeedbackInput) { in.TargetType = "room" }, wantField: "targetType"},
		{name: "missing-target-id", mutate: func(in *FeedbackInput) { in.TargetID = "" }, wantField: "targetId"},
		{name: "rating-zero", mutate: func(in *FeedbackInput) { in.Rating = 0 }, wantField: "rating"},
		{name: "rating-six", mutate: func(in *FeedbackInput) { in.Rating = 6 }, wantField: "rating"},
		{name: "comment-padded", mutate: func(in *FeedbackInput) { in.Comment = "    nine char   " }, wantField: "comment"},
		{name: "comment-exactly-ten", mutate: func(in *FeedbackInput) { in.Comment = " 0123456789 " }},
		{name: "comment-too-long", mutate: func(in *FeedbackInput) { in.Comment = strings.Repeat("a", 501) }, wantField: "comment"},
		{name: "unknown-category", mutate: func(in *FeedbackInput) { in.Category = "food" }, wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.wantField {
				t.Fatalf("Validate() field = %v, want %s", err, tt.wantField)
			}
		})
	}
}

func TestRecordCopiesInput(t *testing.T) {
	in := validInput()
	ts := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	r := in.Record("abc", ts)
	if r.ID != "abc" || r.TargetID != in.TargetID || r.Rating != in.Rating || r.Category != in.Category || !r.Timestamp.Equal(ts) {
		t.Fatalf("Record() = %+v", r)
	}
}
