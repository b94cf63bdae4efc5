package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/testkit"
	"qualifiers/internal/services/qualifiers/domain"

	"github.com/fatih/color"
)

func TestPrintSummary(t *testing.T) {
	testkit.Swap(t, &color.NoColor, true)

	sum := domain.Summary{
		RunID:    "run-1",
		Lines:    5,
		Imported: 3,
		Failed:   2,
		ByKind:   map[string]int{"MissingTime": 1, "InvalidSeatNumber": 1},
		Elapsed:  1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	printSummary(&buf, sum, nil)
	out := buf.String()
	testkit.MustContain(t, out, "import run-1")
	testkit.MustContain(t, out, "imported")
	testkit.MustContain(t, out, "1.5s")
	testkit.MustContain(t, out, "\nok")
	if strings.Index(out, "InvalidSeatNumber") > strings.Index(out, "MissingTime") {
		t.Fatalf("kinds should be sorted:\n%s", out)
	}

	buf.Reset()
	sum.DryRun = true
	printSummary(&buf, sum, perr.WithLine(perr.Validationf("invalid seat number"), 4))
	out = buf.String()
	testkit.MustContain(t, out, "(dry run)")
	testkit.MustContain(t, out, "failed: line 4: invalid seat number")
}
