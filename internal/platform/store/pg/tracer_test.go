package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"INSERT INTO examinees\n\t(id, surname)\r\nVALUES ($1,  $2)", "INSERT INTO examinees (id, surname) VALUES ($1, $2)"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Op        string  `json:"op"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func TestTracer_InfoAndWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	ev := QueryEvent{
		Op:        "examinees.insert",
		SQL:       "INSERT INTO examinees\n VALUES ($1)",
		Args:      []any{1},
		ElapsedUS: 2500,
		Err:       errors.New("boom"),
	}
	tr.OnQuery(context.Background(), ev)

	var line logLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal: %v\nraw=%s", err, buf.String())
	}
	// the root level is ignored by the tracer
	if line.Level != "info" || line.Message != "pg query" || line.Component != "pg" {
		t.Fatalf("unexpected line: %+v", line)
	}
	if line.Op != "examinees.insert" || line.SQL != "INSERT INTO examinees VALUES ($1)" || line.Error != "boom" {
		t.Fatalf("fields: %+v", line)
	}
	if line.ElapsedMS != 2.5 {
		t.Fatalf("elapsed_ms = %v", line.ElapsedMS)
	}

	buf.Reset()
	ev.Slow, ev.Op = true, ""
	tr.OnQuery(context.Background(), ev)
	line = logLine{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal warn: %v", err)
	}
	if line.Level != "warn" || !line.Slow || line.Op != "" {
		t.Fatalf("warn line: %+v", line)
	}
}
