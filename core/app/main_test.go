package app_test

import (
	"testing"

	"go.uber.org/goleak"
)

// The shells must not spawn goroutines of their own.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
