package format

import "testing"

func TestDefault(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-7, "-7"},
		{2.5, "2.5"},
		{0.125, "0.125"},
	}

	for _, tt := range tests {
		if got := Default(tt.in); got != tt.want {
			t.Errorf("Default(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLuaFormatter(t *testing.T) {
	f, err := NewLuaFormatter(`function format(value)
		return string.format("%.0f%%", value)
	end`)
	if err != nil {
		t.Fatalf("NewLuaFormatter() error: %v", err)
	}
	defer f.Close()

	if got := f.Format(42); got != "42%" {
		t.Errorf("Format(42) = %q, want \"42%%\"", got)
	}
	if got := f.Format(0); got != "0%" {
		t.Errorf("Format(0) = %q, want \"0%%\"", got)
	}
}

func TestLuaFormatterMathLib(t *testing.T) {
	f, err := NewLuaFormatter(`function format(value)
		return tostring(math.floor(value))
	end`)
	if err != nil {
		t.Fatalf("NewLuaFormatter() error: %v", err)
	}
	defer f.Close()

	if got := f.Format(3.9); got != "3" {
		t.Errorf("Format(3.9) = %q, want \"3\"", got)
	}
}

func TestLuaFormatterMissingFunction(t *testing.T) {
	if _, err := NewLuaFormatter(`x = 1`); err != ErrNoFormatFunction {
		t.Errorf("error = %v, want ErrNoFormatFunction", err)
	}
}

func TestLuaFormatterSyntaxError(t *testing.T) {
	if _, err := NewLuaFormatter(`function format(`); err == nil {
		t.Error("syntax error not reported")
	}
}

func TestLuaFormatterRuntimeErrorFallsBack(t *testing.T) {
	f, err := NewLuaFormatter(`function format(value)
		error("boom")
	end`)
	if err != nil {
		t.Fatalf("NewLuaFormatter() error: %v", err)
	}
	defer f.Close()

	if got := f.Format(5); got != "5" {
		t.Errorf("Format(5) = %q, want fallback \"5\"", got)
	}
}

func TestLuaFormatterNonStringFallsBack(t *testing.T) {
	f, err := NewLuaFormatter(`function format(value)
		return {value}
	end`)
	if err != nil {
		t.Fatalf("NewLuaFormatter() error: %v", err)
	}
	defer f.Close()

	if got := f.Format(9); got != "9" {
		t.Errorf("Format(9) = %q, want fallback \"9\"", got)
	}
}

func TestLuaFormatterAfterClose(t *testing.T) {
	f, err := NewLuaFormatter(`function format(value)
		return "x"
	end`)
	if err != nil {
		t.Fatalf("NewLuaFormatter() error: %v", err)
	}
	f.Close()

	if got := f.Format(1); got != "1" {
		t.Errorf("Format after Close = %q, want fallback \"1\"", got)
	}
}
