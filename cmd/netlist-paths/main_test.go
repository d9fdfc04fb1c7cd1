package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0"?>
<verilator_xml>
  <files>
    <file id="1" filename="test.sv" language="1800-2012"/>
  </files>
  <netlist>
    <typetable>
      <basicdtype id="1" name="logic" loc="1,1,1,1,1"/>
    </typetable>
    <module name="TOP" loc="1,1,1,1,1">
      <var name="TOP.in" loc="1,1,1,1,1" dtype_id="1" dir="input"/>
      <var name="TOP.reg" loc="1,1,1,1,1" dtype_id="1"/>
      <var name="TOP.out" loc="1,1,1,1,1" dtype_id="1" dir="output"/>
      <topscope loc="1,1,1,1,1">
        <varscope name="TOP.in" loc="1,1,1,1,1" dtype_id="1"/>
        <varscope name="TOP.reg" loc="1,1,1,1,1" dtype_id="1"/>
        <varscope name="TOP.out" loc="1,1,1,1,1" dtype_id="1"/>
        <always loc="1,1,1,1,1">
          <assigndly loc="1,1,1,1,1">
            <varref name="TOP.in" loc="1,1,1,1,1"/>
            <varref name="TOP.reg" loc="1,1,1,1,1"/>
          </assigndly>
        </always>
        <assign loc="1,1,1,1,1">
          <varref name="TOP.reg" loc="1,1,1,1,1"/>
          <varref name="TOP.out" loc="1,1,1,1,1"/>
        </assign>
      </topscope>
    </module>
  </netlist>
</verilator_xml>`

func writeSampleDoc(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "netlist-paths-cmd-*.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(sampleDoc); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestFromToReportsAPath(t *testing.T) {
	doc := writeSampleDoc(t)
	out, err := runCmd(t, doc, "--from", "TOP.in", "--to", "TOP.out", "--traverse-registers")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "TOP.in") || !strings.Contains(out, "TOP.out") {
		t.Errorf("expected a path through TOP.in and TOP.out, got %q", out)
	}
}

func TestNoPathReported(t *testing.T) {
	doc := writeSampleDoc(t)
	out, err := runCmd(t, doc, "--from", "TOP.out", "--to", "TOP.in")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "no path") {
		t.Errorf("expected \"no path\", got %q", out)
	}
}

func TestFilenamesLists(t *testing.T) {
	doc := writeSampleDoc(t)
	out, err := runCmd(t, doc, "--filenames")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "test.sv" {
		t.Errorf("expected \"test.sv\", got %q", out)
	}
}

func TestDumpNamesLists(t *testing.T) {
	doc := writeSampleDoc(t)
	out, err := runCmd(t, doc, "--dumpnames")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"TOP.in", "TOP.out"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in dumpnames output, got %q", want, out)
		}
	}
}

func TestMissingReportFlagIsAnError(t *testing.T) {
	doc := writeSampleDoc(t)
	if _, err := runCmd(t, doc); err == nil {
		t.Fatal("expected an error when no report flag is given")
	}
}
