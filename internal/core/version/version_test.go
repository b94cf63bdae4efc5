package version

import (
	"runtime"
	"testing"

	"qualifiers/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	t.Parallel()

	bi := Info("qualifiers-api")
	if bi.Service != "qualifiers-api" || bi.Version != "dev" || bi.Commit != "none" || bi.Go != runtime.Version() {
		t.Fatalf("unexpected build info %+v", bi)
	}
}

func TestInfo_Stamped(t *testing.T) {
	testkit.Swap(t, &version, "v1.2.0")
	testkit.Swap(t, &commit, "abcd123")

	bi := Info("qualifiers-extract")
	if bi.Version != "v1.2.0" || bi.Commit != "abcd123" || Commit() != "abcd123" {
		t.Fatalf("ldflags values not reported: %+v", bi)
	}
}
