package git

import "testing"

func TestGetRepoRootFrom_NotARepo(t *testing.T) {
	c := NewClient()
	if _, err := c.GetRepoRootFrom(t.TempDir()); err == nil {
		t.Error("expected error outside a git repository")
	}
}
