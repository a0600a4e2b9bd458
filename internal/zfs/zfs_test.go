package zfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeRunner maps "name arg arg…" command lines to canned stdout or errors
// and records every invocation.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	cmdline := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, cmdline)
	if err, ok := f.errs[cmdline]; ok {
		return "", err
	}
	out, ok := f.outputs[cmdline]
	if !ok {
		return "", fmt.Errorf("unexpected command: %s", cmdline)
	}
	return out, nil
}

func TestListPoolsUsesSecondaryUsableSizeQuery(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"zpool list -H -p": "tank\t1000\t300\t700\t-\t-\t5\t30\t1.00\tONLINE\t-\n",
			"zfs list -H -p -o used,avail tank": "300\t500\n",
		},
	}
	client := NewClient(runner)
	pools, err := client.ListPools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pools) != 1 {
		t.Fatalf("expected 1 pool, got %d", len(pools))
	}
	if pools[0].UsableSize != 800 {
		t.Fatalf("expected usable size 800 (used+avail), got %d", pools[0].UsableSize)
	}
}

func TestListPoolsFallsBackToSizeWhenUsableQueryFails(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"zpool list -H -p": "tank\t1000\t300\t700\t-\t-\t5\t30\t1.00\tONLINE\t-\n",
		},
		errs: map[string]error{
			"zfs list -H -p -o used,avail tank": errors.New("zfs: dataset busy"),
		},
	}
	pools, err := NewClient(runner).ListPools(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pools[0].UsableSize != 1000 {
		t.Fatalf("expected fallback to size column, got %d", pools[0].UsableSize)
	}
}

func TestListPoolsPropagatesToolDiagnostics(t *testing.T) {
	runner := &fakeRunner{
		errs: map[string]error{
			"zpool list -H -p": errors.New("zpool list -H -p: no pools available"),
		},
	}
	_, err := NewClient(runner).ListPools(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "no pools available") {
		t.Fatalf("expected stderr text carried in error, got %q", err.Error())
	}
}

func TestListDatasetsArgumentsAndSkipping(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"zfs list -H -p -r -o name,used,avail,refer,usedbysnapshots tank": strings.Join([]string{
				"tank\t100\t900\t80\t20",
				"",
				"malformed line",
				"tank/home\t50\t900\t40\t10",
			}, "\n") + "\n",
		},
	}
	datasets, err := NewClient(runner).ListDatasets(context.Background(), "tank")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("expected malformed and blank lines dropped, got %d datasets", len(datasets))
	}
	if datasets[1].Name != "tank/home" {
		t.Fatalf("expected tank/home second, got %q", datasets[1].Name)
	}
}

func TestListSnapshotsArguments(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{
			"zfs list -H -p -t snap -r -o name,used,refer,creation tank/home": "tank/home@a\t1\t2\tnow\n",
		},
	}
	snaps, err := NewClient(runner).ListSnapshots(context.Background(), "tank/home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Name != "tank/home@a" {
		t.Fatalf("unexpected snapshots: %+v", snaps)
	}
}

func TestDestroySnapshot(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]string{"zfs destroy tank/home@a": ""},
	}
	if err := NewClient(runner).DestroySnapshot(context.Background(), "tank/home@a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "zfs destroy tank/home@a" {
		t.Fatalf("unexpected calls: %v", runner.calls)
	}
}

func TestFriendlyDeleteError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errors.New("zfs destroy x: permission denied"), "Permission denied. Try running with elevated privileges (sudo)."},
		{errors.New("zfs destroy x: could not find any snapshots to destroy; dataset does not exist"), "Snapshot no longer exists."},
		{errors.New("zfs destroy x: cannot destroy snapshot: dataset is busy"), "Snapshot is currently in use and cannot be deleted."},
		{errors.New("zfs destroy x: I/O error"), "Failed to delete snapshot: zfs destroy x: I/O error"},
	}
	for _, tc := range cases {
		if got := FriendlyDeleteError(tc.err); got != tc.want {
			t.Fatalf("FriendlyDeleteError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
