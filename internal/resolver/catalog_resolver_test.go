package resolver

import (
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/testutil"
)

// mockPrompter implements prompt.Prompter for testing.
type mockPrompter struct {
	selectResult string
	selectCalled bool
}

func (m *mockPrompter) Select(title string, options []string) (string, error) {
	m.selectCalled = true
	return m.selectResult, nil
}

func (m *mockPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	return "", prompt.ErrNonInteractive
}

func (m *mockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, prompt.ErrNonInteractive
}

func TestCatalogResolver_Explicit(t *testing.T) {
	cs := testutil.NewMemCatalogStore(testutil.TestCatalog("warm"), testutil.TestCatalog("cool"))
	r := NewCatalogResolver(cs, &testutil.MemGlobalStore{}, &prompt.NoopPrompter{})

	got, err := r.Resolve("cool", false)
	if err != nil || got != "cool" {
		t.Errorf("Resolve = %q, %v; want cool", got, err)
	}

	if _, err := r.Resolve("nope", false); !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestCatalogResolver_NoCatalogs(t *testing.T) {
	r := NewCatalogResolver(testutil.NewMemCatalogStore(), &testutil.MemGlobalStore{}, &prompt.NoopPrompter{})

	if _, err := r.Resolve("", false); !swerr.IsNotInitialized(err) {
		t.Errorf("Expected NotInitialized, got %v", err)
	}
}

func TestCatalogResolver_Single(t *testing.T) {
	cs := testutil.NewMemCatalogStore(testutil.TestCatalog("only"))
	r := NewCatalogResolver(cs, &testutil.MemGlobalStore{}, &prompt.NoopPrompter{})

	got, err := r.Resolve("", false)
	if err != nil || got != "only" {
		t.Errorf("Resolve = %q, %v; want only", got, err)
	}
}

func TestCatalogResolver_ConfiguredDefault(t *testing.T) {
	cs := testutil.NewMemCatalogStore(testutil.TestCatalog("warm"), testutil.TestCatalog("cool"))
	gs := &testutil.MemGlobalStore{Config: &model.GlobalConfig{DefaultCatalog: "warm"}}
	r := NewCatalogResolver(cs, gs, &prompt.NoopPrompter{})

	got, err := r.Resolve("", false)
	if err != nil || got != "warm" {
		t.Errorf("Resolve = %q, %v; want warm", got, err)
	}
}

func TestCatalogResolver_MultipleNonInteractive(t *testing.T) {
	cs := testutil.NewMemCatalogStore(testutil.TestCatalog("warm"), testutil.TestCatalog("cool"))
	r := NewCatalogResolver(cs, &testutil.MemGlobalStore{}, &prompt.NoopPrompter{})

	if _, err := r.Resolve("", false); err == nil {
		t.Error("Expected error with multiple catalogs and no default")
	}
}

func TestCatalogResolver_Prompts(t *testing.T) {
	cs := testutil.NewMemCatalogStore(testutil.TestCatalog("warm"), testutil.TestCatalog("cool"))
	p := &mockPrompter{selectResult: "cool"}
	r := NewCatalogResolver(cs, &testutil.MemGlobalStore{}, p)

	got, err := r.Resolve("", true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !p.selectCalled || got != "cool" {
		t.Errorf("Expected prompted selection 'cool', got %q (called=%v)", got, p.selectCalled)
	}
}
