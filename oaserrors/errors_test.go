package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDeclarationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &DeclarationError{
			Message: "only one root declaration is allowed",
			Units:   []string{"PetController", "UserController"},
			Cause:   errors.New("underlying"),
		}
		expected := "declaration error: only one root declaration is allowed (units: PetController, UserController): underlying"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &DeclarationError{}
		if err.Error() != "declaration error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DeclarationError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrDeclaration only", func(t *testing.T) {
		err := &DeclarationError{Message: "root must be declared"}
		if !errors.Is(err, ErrDeclaration) {
			t.Error("DeclarationError should match ErrDeclaration")
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotSupported) {
			t.Error("DeclarationError should not match other sentinels")
		}
	})

	t.Run("As extracts DeclarationError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &DeclarationError{Message: "x"})
		var declErr *DeclarationError
		if !errors.As(err, &declErr) {
			t.Fatal("errors.As should succeed")
		}
		if declErr.Message != "x" {
			t.Errorf("unexpected message: %s", declErr.Message)
		}
	})
}

func TestNotFoundError(t *testing.T) {
	t.Run("Error message with kind", func(t *testing.T) {
		err := &NotFoundError{Kind: "api declaration", Name: "missing"}
		if err.Error() != `not found: api declaration named "missing"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without kind", func(t *testing.T) {
		err := &NotFoundError{Name: "x"}
		if err.Error() != `not found: document named "x"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrNotFound through wrapping", func(t *testing.T) {
		err := fmt.Errorf("builder: %w", &NotFoundError{Name: "x"})
		if !errors.Is(err, ErrNotFound) {
			t.Error("wrapped NotFoundError should match ErrNotFound")
		}
	})
}

func TestNotSupportedError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &NotSupportedError{
			Operation: "Operation.ResponseMessage",
			Dialect:   "2.0",
			Supported: []string{"1.2"},
			Message:   "use Response instead",
		}
		expected := "not supported: Operation.ResponseMessage under dialect 2.0 (supported: 1.2): use Response instead"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &NotSupportedError{}
		if err.Error() != "not supported" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrNotSupported", func(t *testing.T) {
		err := &NotSupportedError{Operation: "Root.API"}
		if !errors.Is(err, ErrNotSupported) {
			t.Error("NotSupportedError should match ErrNotSupported")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("NotSupportedError should not match ErrConfig")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "method",
			Value:   "fetch",
			Message: "not a path operation",
			Cause:   errors.New("unknown"),
		}
		expected := "configuration error for method (value: fetch): not a path operation: unknown"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ConfigError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
