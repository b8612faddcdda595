package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    *Error
	}{
		{
			name: "message only",
			e:    New(ErrIllegalChild, "managed-bean is not allowed under application", ""),
			want: "[faces-illegal-child] managed-bean is not allowed under application",
		},
		{
			name: "with path",
			e:    Newf(ErrUnexpectedRoot, "/web-app", "unexpected root %s", "web-app"),
			want: "[faces-unexpected-root] unexpected root web-app at /web-app",
		},
		{
			name: "nil",
			e:    nil,
			want: "error <nil>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("append: %w", New(ErrNotChild, "not a child", "/faces-config"))
	if !errors.Is(err, ErrNotChild) {
		t.Fatalf("errors.Is(err, ErrNotChild) = false")
	}
	if errors.Is(err, ErrIllegalChild) {
		t.Fatalf("errors.Is(err, ErrIllegalChild) = true")
	}
	code, ok := CodeOf(err)
	if !ok || code != ErrNotChild {
		t.Fatalf("CodeOf() = %q, %v", code, ok)
	}
	if code, ok := CodeOf(fmt.Errorf("wrap: %w", ErrHistory)); !ok || code != ErrHistory {
		t.Fatalf("CodeOf(bare code) = %q, %v", code, ok)
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf(plain) ok = true")
	}
}

func TestIssueList(t *testing.T) {
	list := IssueList{
		*New(ErrForeignElement, "foreign element {urn:x}a", "/faces-config/a"),
		*New(ErrForeignElement, "foreign element {urn:x}b", "/faces-config/b"),
	}
	if got, want := list.Error(), "[faces-foreign-element] foreign element {urn:x}a at /faces-config/a (and 1 more)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	issues, ok := AsIssues(fmt.Errorf("check: %w", list))
	if !ok || len(issues) != 2 {
		t.Fatalf("AsIssues() = %v, %v", issues, ok)
	}
	if _, ok := AsIssues(nil); ok {
		t.Fatalf("AsIssues(nil) ok = true")
	}
	if got := (IssueList{}).Error(); got != "no issues" {
		t.Fatalf("Error() = %q", got)
	}
}
