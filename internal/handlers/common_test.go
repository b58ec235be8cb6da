package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"trivia-api/internal/services"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: fmt.Errorf("question 9: %w", services.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: page 0", services.ErrInvalidPage), want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: answer required", services.ErrInvalidInput), want: http.StatusUnprocessableEntity},
		{err: fmt.Errorf("%w: disk full", services.ErrWriteFailed), want: http.StatusUnprocessableEntity},
		{err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorResponseMessages(t *testing.T) {
	for status, message := range errorMessages {
		resp := newErrorResponse(status)
		if resp.Success || resp.Error != status || resp.Message != message {
			t.Errorf("newErrorResponse(%d) = %+v", status, resp)
		}
	}
}

func TestFlexibleIDUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    FlexibleID
		wantErr bool
	}{
		{input: `3`, want: 3},
		{input: `"3"`, want: 3},
		{input: `0`, want: 0},
		{input: `"abc"`, wantErr: true},
		{input: `true`, wantErr: true},
		{input: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		var got struct {
			ID FlexibleID `json:"id"`
		}
		err := json.Unmarshal([]byte(`{"id":`+tt.input+`}`), &got)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.input, err)
			continue
		}
		if got.ID != tt.want {
			t.Errorf("%s: got %d, want %d", tt.input, got.ID, tt.want)
		}
	}
}
