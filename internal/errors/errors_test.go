package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestMoveErrorUnwrap(t *testing.T) {
	err := &MoveError{Err: ErrNoPieceAtSquare, From: "e5", To: "e6"}
	if !errors.Is(err, ErrNoPieceAtSquare) {
		t.Error("errors.Is failed through MoveError")
	}
	var moveErr *MoveError
	if !errors.As(error(err), &moveErr) {
		t.Error("errors.As failed for *MoveError")
	}
	if moveErr.From != "e5" {
		t.Errorf("From = %q, want e5", moveErr.From)
	}
}

func TestMoveErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want []string
	}{
		{
			"squares and sentinel",
			&MoveError{Err: ErrNoPieceAtSquare, From: "e5", To: "e6"},
			[]string{"move e5-e6", "no piece at source square"},
		},
		{
			"with detail",
			&MoveError{Err: ErrPieceMissing, From: "a1", To: "a8", Detail: "registry lookup failed"},
			[]string{"move a1-a8", "registry lookup failed", "piece id missing"},
		},
		{
			"no underlying error",
			&MoveError{From: "b2", To: "b4"},
			[]string{"move b2-b4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	err := Wrap(ErrInvalidFEN, "parsing start position")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is failed through Wrap")
	}
	if !strings.Contains(err.Error(), "parsing start position") {
		t.Errorf("message %q missing context", err.Error())
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "field %d", 3) != nil {
		t.Error("Wrapf(nil) != nil")
	}
	err := Wrapf(ErrInvalidSquare, "field %d of %q", 3, "x9")
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("errors.Is failed through Wrapf")
	}
	if !strings.Contains(err.Error(), `field 3 of "x9"`) {
		t.Errorf("message %q missing formatted context", err.Error())
	}
}
