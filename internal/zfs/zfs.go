package zfs

import (
	"context"
	"fmt"
	"strings"
)

// Client queries pools, datasets and snapshots through the zpool/zfs
// command-line tools.
type Client struct {
	runner Runner
}

// NewClient returns a client backed by the given runner. A nil runner
// selects the real zpool/zfs binaries.
func NewClient(runner Runner) *Client {
	if runner == nil {
		runner = execRunner{}
	}
	return &Client{runner: runner}
}

// ListPools returns every imported pool. Each pool's usable size comes
// from a secondary per-pool query and falls back to the raw size column
// when that query fails.
func (c *Client) ListPools(ctx context.Context) ([]Pool, error) {
	out, err := c.runner.Run(ctx, "zpool", "list", "-H", "-p")
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	var pools []Pool
	for _, line := range strings.Split(out, "\n") {
		p, ok := ParsePoolLine(line)
		if !ok {
			continue
		}
		if usable, err := c.poolUsableSize(ctx, p.Name); err == nil {
			p.UsableSize = usable
		}
		pools = append(pools, p)
	}
	return pools, nil
}

func (c *Client) poolUsableSize(ctx context.Context, pool string) (uint64, error) {
	out, err := c.runner.Run(ctx, "zfs", "list", "-H", "-p", "-o", "used,avail", pool)
	if err != nil {
		return 0, fmt.Errorf("usable size for pool %s: %w", pool, err)
	}
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return 0, fmt.Errorf("usable size for pool %s: unexpected output %q", pool, line)
	}
	return parseSize(fields[0]) + parseSize(fields[1]), nil
}

// ListDatasets returns the pool's datasets, recursively.
func (c *Client) ListDatasets(ctx context.Context, pool string) ([]Dataset, error) {
	out, err := c.runner.Run(ctx, "zfs", "list", "-H", "-p", "-r",
		"-o", "name,used,avail,refer,usedbysnapshots", pool)
	if err != nil {
		return nil, fmt.Errorf("list datasets for pool %s: %w", pool, err)
	}
	var datasets []Dataset
	for _, line := range strings.Split(out, "\n") {
		if d, ok := ParseDatasetLine(line); ok {
			datasets = append(datasets, d)
		}
	}
	return datasets, nil
}

// ListSnapshots returns the dataset's snapshots, recursively.
func (c *Client) ListSnapshots(ctx context.Context, dataset string) ([]Snapshot, error) {
	out, err := c.runner.Run(ctx, "zfs", "list", "-H", "-p", "-t", "snap", "-r",
		"-o", "name,used,refer,creation", dataset)
	if err != nil {
		return nil, fmt.Errorf("list snapshots for dataset %s: %w", dataset, err)
	}
	var snapshots []Snapshot
	for _, line := range strings.Split(out, "\n") {
		if s, ok := ParseSnapshotLine(line); ok {
			snapshots = append(snapshots, s)
		}
	}
	return snapshots, nil
}

// DestroySnapshot removes a snapshot by its full dataset@label name.
func (c *Client) DestroySnapshot(ctx context.Context, name string) error {
	if _, err := c.runner.Run(ctx, "zfs", "destroy", name); err != nil {
		return fmt.Errorf("destroy snapshot %s: %w", name, err)
	}
	return nil
}
