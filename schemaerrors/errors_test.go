package schemaerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &ParseError{
			Path:    "api.json",
			Message: "invalid refract element",
			Cause:   cause,
		}
		expected := "parse error in api.json: invalid refract element: unexpected end of JSON input"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrReference) {
			t.Error("ParseError should not match ErrReference")
		}
	})
}

func TestUnknownElementError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &UnknownElementError{Element: "widget", Path: "$[0].properties[1]"}
		if msg := err.Error(); msg != "unknown element: widget at $[0].properties[1]" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with context", func(t *testing.T) {
		err := &UnknownElementError{Path: "$[2]", Message: "member has no value"}
		if msg := err.Error(); msg != "unknown element at $[2]: member has no value" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is and As", func(t *testing.T) {
		err := fmt.Errorf("mapper: %w", &UnknownElementError{Element: "widget"})
		if !errors.Is(err, ErrUnknownElement) {
			t.Error("should match ErrUnknownElement")
		}
		if errors.Is(err, ErrReference) {
			t.Error("should not match ErrReference")
		}
		var unknown *UnknownElementError
		if !errors.As(err, &unknown) {
			t.Fatal("errors.As should succeed")
		}
		if unknown.Element != "widget" {
			t.Errorf("unexpected element: %s", unknown.Element)
		}
	})
}

func TestUnresolvedReferenceError(t *testing.T) {
	t.Run("Error message without chain", func(t *testing.T) {
		err := &UnresolvedReferenceError{Ref: "User"}
		if msg := err.Error(); msg != "unresolved reference: User" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with chain", func(t *testing.T) {
		err := &UnresolvedReferenceError{Ref: "Address", Chain: []string{"User", "Profile"}}
		if msg := err.Error(); msg != "unresolved reference: Address (via User -> Profile)" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches both reference sentinels", func(t *testing.T) {
		err := &UnresolvedReferenceError{Ref: "User"}
		if !errors.Is(err, ErrUnresolvedReference) {
			t.Error("should match ErrUnresolvedReference")
		}
		if !errors.Is(err, ErrReference) {
			t.Error("should match ErrReference")
		}
		if errors.Is(err, ErrCyclicReference) {
			t.Error("should not match ErrCyclicReference")
		}
	})
}

func TestCyclicReferenceError(t *testing.T) {
	t.Run("Error message closes the loop", func(t *testing.T) {
		err := &CyclicReferenceError{Ref: "A", Chain: []string{"A", "B"}}
		if msg := err.Error(); msg != "cyclic reference: A (A -> B -> A)" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message does not alias chain", func(t *testing.T) {
		chain := make([]string, 2, 4)
		chain[0], chain[1] = "A", "B"
		err := &CyclicReferenceError{Ref: "A", Chain: chain}
		_ = err.Error()
		if len(err.Chain) != 2 || chain[:3][2] != "" {
			t.Error("Error should not modify the chain")
		}
	})

	t.Run("Is matches both reference sentinels", func(t *testing.T) {
		err := fmt.Errorf("resolver: %w", &CyclicReferenceError{Ref: "A"})
		if !errors.Is(err, ErrCyclicReference) {
			t.Error("should match ErrCyclicReference")
		}
		if !errors.Is(err, ErrReference) {
			t.Error("should match ErrReference")
		}
		if errors.Is(err, ErrUnresolvedReference) {
			t.Error("should not match ErrUnresolvedReference")
		}
	})
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "concurrency", Value: -1, Message: "must be positive"}
	if msg := err.Error(); msg != "configuration error for concurrency (value: -1): must be positive" {
		t.Errorf("unexpected error message: %s", msg)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
}

func TestRenderError(t *testing.T) {
	cause := errors.New("function \"nope\" not defined")
	err := &RenderError{Template: "custom.tmpl", Message: "parsing template", Cause: cause}
	expected := "render error in custom.tmpl: parsing template: function \"nope\" not defined"
	if msg := err.Error(); msg != expected {
		t.Errorf("unexpected error message: %s", msg)
	}
	if !errors.Is(err, ErrRender) {
		t.Error("RenderError should match ErrRender")
	}
	//nolint:errorlint // testing pointer identity
	if err.Unwrap() != cause {
		t.Error("Unwrap should return cause")
	}
}

func TestSizeLimitError(t *testing.T) {
	err := &SizeLimitError{Limit: 100, Path: "$[0].properties[1]"}
	if msg := err.Error(); msg != "size limit exceeded: more than 100 schema nodes at $[0].properties[1]" {
		t.Errorf("unexpected error message: %s", msg)
	}
	if !errors.Is(err, ErrSizeLimit) {
		t.Error("SizeLimitError should match ErrSizeLimit")
	}
	if errors.Is(err, ErrReference) {
		t.Error("SizeLimitError should not match ErrReference")
	}
}
