package workspace_test

import (
	"testing"

	"go.uber.org/goleak"
)

// The scanner and watcher start goroutines; none may outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
