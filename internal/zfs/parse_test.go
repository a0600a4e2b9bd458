package zfs

import "testing"

func TestParsePoolLine(t *testing.T) {
	line := "tank\t10995116277760\t3298534883328\t7696581394432\t-\t-\t5\t30\t1.00\tONLINE\t-"
	p, ok := ParsePoolLine(line)
	if !ok {
		t.Fatalf("expected pool line to parse")
	}
	if p.Name != "tank" {
		t.Fatalf("expected name tank, got %q", p.Name)
	}
	if p.Size != 10995116277760 {
		t.Fatalf("expected size 10995116277760, got %d", p.Size)
	}
	if p.Allocated != 3298534883328 {
		t.Fatalf("expected allocated 3298534883328, got %d", p.Allocated)
	}
	if p.Free != 7696581394432 {
		t.Fatalf("expected free 7696581394432, got %d", p.Free)
	}
	if p.Health != "ONLINE" {
		t.Fatalf("expected health ONLINE, got %q", p.Health)
	}
	if p.UsableSize != p.Size {
		t.Fatalf("expected usable size to default to size, got %d", p.UsableSize)
	}
}

func TestParsePoolLineSkipsMalformed(t *testing.T) {
	for _, line := range []string{"", "   ", "tank\t100", "a\tb\tc\td\te\tf"} {
		if _, ok := ParsePoolLine(line); ok {
			t.Fatalf("expected line %q to be skipped", line)
		}
	}
}

func TestParseDatasetLine(t *testing.T) {
	d, ok := ParseDatasetLine("tank/home\t858993459200\t7696581394432\t644245094400\t214748364800")
	if !ok {
		t.Fatalf("expected dataset line to parse")
	}
	if d.Name != "tank/home" {
		t.Fatalf("expected name tank/home, got %q", d.Name)
	}
	if d.Used != 858993459200 {
		t.Fatalf("expected used 858993459200, got %d", d.Used)
	}
	if d.Available != 7696581394432 {
		t.Fatalf("expected available 7696581394432, got %d", d.Available)
	}
	if d.Referenced != 644245094400 {
		t.Fatalf("expected referenced 644245094400, got %d", d.Referenced)
	}
	if d.SnapshotUsed != 214748364800 {
		t.Fatalf("expected snapshot used 214748364800, got %d", d.SnapshotUsed)
	}
}

func TestParseDatasetLineDefaultsBadNumbersToZero(t *testing.T) {
	d, ok := ParseDatasetLine("tank/home\tgarbage\t-\t644245094400\t")
	if !ok {
		t.Fatalf("expected dataset line to parse despite corrupt fields")
	}
	if d.Used != 0 || d.Available != 0 || d.SnapshotUsed != 0 {
		t.Fatalf("expected corrupt numeric fields to default to zero, got %+v", d)
	}
	if d.Referenced != 644245094400 {
		t.Fatalf("expected valid field preserved, got %d", d.Referenced)
	}
}

func TestParseSnapshotLine(t *testing.T) {
	s, ok := ParseSnapshotLine("tank/home@backup-2026-08-01\t1048576\t644245094400\tFri Aug  1 04:00 2026")
	if !ok {
		t.Fatalf("expected snapshot line to parse")
	}
	if s.Name != "tank/home@backup-2026-08-01" {
		t.Fatalf("unexpected name %q", s.Name)
	}
	if s.Used != 1048576 {
		t.Fatalf("expected used 1048576, got %d", s.Used)
	}
	if s.Referenced != 644245094400 {
		t.Fatalf("expected referenced 644245094400, got %d", s.Referenced)
	}
	if s.Creation != "Fri Aug  1 04:00 2026" {
		t.Fatalf("expected creation kept verbatim, got %q", s.Creation)
	}
	if s.ShortName() != "backup-2026-08-01" {
		t.Fatalf("expected short name backup-2026-08-01, got %q", s.ShortName())
	}
}

func TestParseSnapshotLineSkipsTruncated(t *testing.T) {
	if _, ok := ParseSnapshotLine("tank/home@x\t1\t2"); ok {
		t.Fatalf("expected truncated snapshot line to be skipped")
	}
}
