package options

import "testing"

func TestMerge_DefaultsOnly(t *testing.T) {
	st := New()
	st.Merge(Defaults(), SourceDefault)

	for key, want := range Defaults() {
		if got := st.Get(key); got != want {
			t.Errorf("Get(%q) = %v, want %v", key, got, want)
		}
		if st.Source(key) != SourceDefault {
			t.Errorf("Source(%q) = %v, want default", key, st.Source(key))
		}
	}
}

func TestMerge_Layering(t *testing.T) {
	st := New()
	st.Merge(map[string]any{"a": "1"}, SourceDefault)
	st.Merge(map[string]any{"a": "2", "b": "3"}, SourceSettings)
	st.Set("a", "4", SourceFlag)

	if got := st.String("a"); got != "4" {
		t.Errorf("a = %q, want 4 (flags win)", got)
	}
	if got := st.String("b"); got != "3" {
		t.Errorf("b = %q, want 3 (settings add)", got)
	}
	if st.Source("a") != SourceFlag {
		t.Errorf("Source(a) = %v, want flag", st.Source("a"))
	}
}

func TestSetIfAbsent(t *testing.T) {
	st := New()
	st.Set("project", "bar", SourceFlag)

	if st.SetIfAbsent("project", "derived") {
		t.Error("SetIfAbsent overwrote an explicitly set value")
	}
	if got := st.String("project"); got != "bar" {
		t.Errorf("project = %q, want bar", got)
	}

	if !st.SetIfAbsent("branch", "main") {
		t.Error("SetIfAbsent did not set an absent key")
	}
	if got := st.String("branch"); got != "main" {
		t.Errorf("branch = %q, want main", got)
	}
	if st.Source("branch") != SourceDerived {
		t.Errorf("Source(branch) = %v, want derived", st.Source("branch"))
	}
}

func TestTypedAccessors(t *testing.T) {
	st := New()
	st.Set("verbose", true, SourceFlag)
	st.Set("port", "3000", SourceDefault)

	if !st.Bool("verbose") {
		t.Error("Bool(verbose) = false, want true")
	}
	if st.Bool("port") {
		t.Error("Bool(port) = true for a string value")
	}
	if st.String("verbose") != "" {
		t.Error("String(verbose) should be empty for a bool value")
	}
	if st.Bool("missing") || st.String("missing") != "" || st.Has("missing") {
		t.Error("absent keys should resolve to zero values")
	}
}
