package classifier

import (
	"testing"

	"goqa/domain/table"
)

func TestClassify(t *testing.T) {
	c := New(DefaultConfig())

	tests := []struct {
		name     string
		raw      string
		expected table.ValueType
	}{
		{"plain integer", "42", table.TypeNumeric},
		{"float", "3.14", table.TypeNumeric},
		{"negative in parentheses", "(123)", table.TypeNumeric},
		{"currency", "$45,000", table.TypeNumeric},
		{"percentage", "12%", table.TypeNumeric},
		{"european decimal", "1,5", table.TypeNumeric},
		{"boolean true", "true", table.TypeBoolean},
		{"boolean alias yes", "Yes", table.TypeBoolean},
		{"boolean alias n", "N", table.TypeBoolean},
		{"iso date", "2023-05-17", table.TypeDate},
		{"us date", "05/17/2023", table.TypeDate},
		{"datetime", "2023-05-17 10:30:00", table.TypeDate},
		{"plain text", "hello world", table.TypeText},
		{"placeholder stays text", "N/A", table.TypeText},
		{"empty is missing", "", table.TypeMissing},
		{"whitespace is missing", "   ", table.TypeMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := c.Classify(tt.raw)
			if v.Type != tt.expected {
				t.Errorf("Classify(%q) type = %s, want %s", tt.raw, v.Type, tt.expected)
			}
		})
	}
}

func TestClassifyNumericPayloads(t *testing.T) {
	c := New(DefaultConfig())

	tests := []struct {
		raw      string
		expected float64
	}{
		{"42", 42},
		{"(123)", -123},
		{"$45,000", 45000},
		{"1,5", 1.5},
		{"1.5e3", 1500},
	}

	for _, tt := range tests {
		v := c.Classify(tt.raw)
		if v.Type != table.TypeNumeric {
			t.Fatalf("Classify(%q) type = %s, want numeric", tt.raw, v.Type)
		}
		if *v.NumericVal != tt.expected {
			t.Errorf("Classify(%q) = %f, want %f", tt.raw, *v.NumericVal, tt.expected)
		}
	}
}

func TestClassifyPreservesRawSpelling(t *testing.T) {
	c := New(DefaultConfig())

	v := c.Classify("TRUE")
	if v.Raw != "TRUE" {
		t.Errorf("Raw = %q, want %q", v.Raw, "TRUE")
	}
	if v.BooleanVal == nil || !*v.BooleanVal {
		t.Errorf("expected boolean true payload")
	}
}

func TestMatchDateLayout(t *testing.T) {
	layout, ok := MatchDateLayout("2023-05-17")
	if !ok || layout != "2006-01-02" {
		t.Errorf("MatchDateLayout = %q, %v; want 2006-01-02, true", layout, ok)
	}

	if _, ok := MatchDateLayout("not a date"); ok {
		t.Errorf("expected no layout match for non-date")
	}
}

func TestIsBooleanAlias(t *testing.T) {
	for _, alias := range []string{"TRUE", "Yes", "n", "off", "1", "0"} {
		if !IsBooleanAlias(alias) {
			t.Errorf("IsBooleanAlias(%q) = false, want true", alias)
		}
	}
	if IsBooleanAlias("maybe") {
		t.Errorf("IsBooleanAlias(maybe) = true, want false")
	}
}

func TestIsMissingPlaceholder(t *testing.T) {
	for _, p := range []string{"NA", "n/a", "null", "None", "-", "missing"} {
		if !IsMissingPlaceholder(p) {
			t.Errorf("IsMissingPlaceholder(%q) = false, want true", p)
		}
	}
	if IsMissingPlaceholder("Berlin") {
		t.Errorf("IsMissingPlaceholder(Berlin) = true, want false")
	}
}
