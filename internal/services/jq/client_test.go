package jq_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"testing"

	"mediagrab/internal/services/jq"
	"mediagrab/internal/testsupport"
)

func TestExtractCommentsArgs(t *testing.T) {
	exec := &testsupport.StubExecutor{Handler: func(call testsupport.Call, stdout io.Writer) error {
		fmt.Fprintln(stdout, "first")
		fmt.Fprintln(stdout, "second")
		return nil
	}}
	client, err := jq.New("jq", "/work", jq.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	if err := client.ExtractComments(context.Background(), "Title.info.json", &out); err != nil {
		t.Fatalf("ExtractComments returned error: %v", err)
	}
	calls := exec.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected one invocation, got %d", len(calls))
	}
	want := []string{"-r", ".comments[].text", "Title.info.json"}
	if !reflect.DeepEqual(calls[0].Args, want) {
		t.Fatalf("unexpected args: got %v want %v", calls[0].Args, want)
	}
	if out.String() != "first\nsecond\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := jq.New("", "."); err == nil {
		t.Fatal("expected error for empty binary")
	}
}
